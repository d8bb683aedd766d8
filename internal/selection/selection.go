// Package selection picks a small, type-diverse set of assets that have not
// been shown recently.
package selection

import (
	"github.com/lazypower/lovewhisper/internal/catalog"
)

// DefaultTarget is the number of assets in a set.
const DefaultTarget = 3

// Source supplies uniform random integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// SelectSet returns up to target assets from pool whose ids are not in
// recent. A result shorter than target means the pool is exhausted; callers
// display what they get. Ids in the result are unique.
//
// With mixTypes, one asset is first drawn from each non-empty type bucket
// (text, poem, image, in that order) and the rest are filled at random.
func SelectSet(pool []catalog.Asset, recent map[string]bool, target int, mixTypes bool, rnd Source) []catalog.Asset {
	eligible := make([]catalog.Asset, 0, len(pool))
	seen := make(map[string]bool, len(pool))
	for _, a := range pool {
		if recent[a.ID] || seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		eligible = append(eligible, a)
	}

	if len(eligible) <= target {
		return eligible
	}

	if !mixTypes {
		return drawN(eligible, target, rnd)
	}

	picked := make(map[string]bool, target)
	sel := make([]catalog.Asset, 0, len(catalog.Types))
	for _, t := range catalog.Types {
		var bucket []catalog.Asset
		for _, a := range eligible {
			if a.Type == t && !picked[a.ID] {
				bucket = append(bucket, a)
			}
		}
		if len(bucket) == 0 {
			continue
		}
		a := bucket[rnd.IntN(len(bucket))]
		picked[a.ID] = true
		sel = append(sel, a)
	}

	if len(sel) < target {
		var rest []catalog.Asset
		for _, a := range eligible {
			if !picked[a.ID] {
				rest = append(rest, a)
			}
		}
		sel = append(sel, drawN(rest, target-len(sel), rnd)...)
	}

	if len(sel) > target {
		sel = sel[:target]
	}
	return sel
}

// drawN draws n assets uniformly without replacement using a partial
// Fisher-Yates shuffle over a copy of from.
func drawN(from []catalog.Asset, n int, rnd Source) []catalog.Asset {
	if n <= 0 {
		return nil
	}
	work := append([]catalog.Asset(nil), from...)
	if n > len(work) {
		n = len(work)
	}
	for i := 0; i < n; i++ {
		j := i + rnd.IntN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n]
}
