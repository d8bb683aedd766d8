package selection

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazypower/lovewhisper/internal/catalog"
)

// firstSource always picks index 0, making bucket picks deterministic.
type firstSource struct{ calls int }

func (s *firstSource) IntN(n int) int {
	s.calls++
	return 0
}

func asset(id string, t catalog.Type) catalog.Asset {
	return catalog.Asset{ID: id, Type: t}
}

func ids(assets []catalog.Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.ID
	}
	return out
}

func countTypes(assets []catalog.Asset) map[catalog.Type]int {
	m := map[catalog.Type]int{}
	for _, a := range assets {
		m[a.Type]++
	}
	return m
}

func TestSelectSetNoDuplicatesAndNoRecent(t *testing.T) {
	pool := catalog.Default().All()
	recent := map[string]bool{"t1": true, "i1": true, "t3": true}

	for seed := uint64(0); seed < 200; seed++ {
		rnd := rand.New(rand.NewPCG(seed, seed*7+1))
		for _, mix := range []bool{true, false} {
			got := SelectSet(pool, recent, DefaultTarget, mix, rnd)
			require.Len(t, got, DefaultTarget)

			seen := map[string]bool{}
			for _, a := range got {
				assert.False(t, seen[a.ID], "duplicate id %s (seed %d)", a.ID, seed)
				assert.False(t, recent[a.ID], "recent id %s served (seed %d)", a.ID, seed)
				seen[a.ID] = true
			}
		}
	}
}

func TestSelectSetTypeDiversity(t *testing.T) {
	pool := catalog.Default().All()

	for seed := uint64(0); seed < 200; seed++ {
		rnd := rand.New(rand.NewPCG(seed, 42))
		got := SelectSet(pool, nil, DefaultTarget, true, rnd)
		types := countTypes(got)
		assert.Equal(t, 1, types[catalog.TypeText], "seed %d: %v", seed, ids(got))
		assert.Equal(t, 1, types[catalog.TypePoem], "seed %d: %v", seed, ids(got))
		assert.Equal(t, 1, types[catalog.TypeImage], "seed %d: %v", seed, ids(got))
	}
}

func TestSelectSetShortPoolReturnsEligibleExactly(t *testing.T) {
	pool := []catalog.Asset{
		asset("a", catalog.TypeText),
		asset("b", catalog.TypePoem),
		asset("c", catalog.TypeImage),
		asset("d", catalog.TypeText),
	}
	recent := map[string]bool{"a": true, "c": true}

	src := &firstSource{}
	got := SelectSet(pool, recent, 3, true, src)
	assert.Equal(t, []string{"b", "d"}, ids(got))
	assert.Zero(t, src.calls, "short pool should not consume randomness")
}

func TestSelectSetEmpty(t *testing.T) {
	got := SelectSet(nil, nil, 3, true, &firstSource{})
	assert.Empty(t, got)

	pool := []catalog.Asset{asset("a", catalog.TypeText)}
	got = SelectSet(pool, map[string]bool{"a": true}, 3, true, &firstSource{})
	assert.Empty(t, got)
}

func TestSelectSetMissingTypeNotForced(t *testing.T) {
	pool := []catalog.Asset{
		asset("t1", catalog.TypeText),
		asset("t2", catalog.TypeText),
		asset("t3", catalog.TypeText),
		asset("p1", catalog.TypePoem),
		asset("p2", catalog.TypePoem),
	}
	got := SelectSet(pool, nil, 3, true, &firstSource{})
	require.Len(t, got, 3)

	// Bucket pass takes t1 and p1, fill draws index 0 of the remainder.
	assert.Equal(t, []string{"t1", "p1", "t2"}, ids(got))
	types := countTypes(got)
	assert.Zero(t, types[catalog.TypeImage])
	assert.GreaterOrEqual(t, types[catalog.TypeText], 1)
	assert.GreaterOrEqual(t, types[catalog.TypePoem], 1)
}

func TestSelectSetTruncatesSmallTarget(t *testing.T) {
	pool := []catalog.Asset{
		asset("t1", catalog.TypeText),
		asset("p1", catalog.TypePoem),
		asset("i1", catalog.TypeImage),
		asset("i2", catalog.TypeImage),
	}
	got := SelectSet(pool, nil, 2, true, &firstSource{})
	assert.Equal(t, []string{"t1", "p1"}, ids(got))
}

func TestSelectSetWithoutMixIsUniform(t *testing.T) {
	pool := []catalog.Asset{
		asset("a", catalog.TypeText),
		asset("b", catalog.TypeText),
		asset("c", catalog.TypeText),
		asset("d", catalog.TypeText),
	}
	rnd := rand.New(rand.NewPCG(1, 2))
	counts := map[string]int{}
	const rounds = 4000
	for i := 0; i < rounds; i++ {
		for _, a := range SelectSet(pool, nil, 1, false, rnd) {
			counts[a.ID]++
		}
	}
	for _, id := range []string{"a", "b", "c", "d"} {
		// Expect ~1000 each; allow generous slack.
		assert.InDelta(t, rounds/4, counts[id], 200, "id %s", id)
	}
}

func TestDrawNDoesNotMutateInput(t *testing.T) {
	from := []catalog.Asset{asset("a", catalog.TypeText), asset("b", catalog.TypeText)}
	rnd := rand.New(rand.NewPCG(3, 4))
	_ = drawN(from, 2, rnd)
	assert.Equal(t, []string{"a", "b"}, ids(from))
}
