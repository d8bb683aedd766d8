// Package gate implements the free-tier daily cap on set regeneration.
//
// The policy is a pure function of (today, subscribed, stored counter), so it
// can be swapped for a real entitlement check without touching storage.
package gate

import (
	"github.com/lazypower/lovewhisper/internal/clock"
)

// DailyFreeRefreshes is the number of extra sets a free user may request per
// calendar day. The first set of a session is always free and not counted.
const DailyFreeRefreshes = 1

// Decision is the outcome of a consume attempt.
type Decision int

const (
	Allowed Decision = iota
	Denied
)

func (d Decision) String() string {
	if d == Denied {
		return "denied"
	}
	return "allowed"
}

// Counters maps a YYYY-MM-DD day key to regenerations consumed that day.
type Counters map[string]int

// Gate applies the daily limit.
type Gate struct {
	Limit int
}

// New returns a Gate with the given daily limit. A negative limit falls back
// to DailyFreeRefreshes.
func New(limit int) Gate {
	if limit < 0 {
		limit = DailyFreeRefreshes
	}
	return Gate{Limit: limit}
}

// TryConsume decides whether one more regeneration is allowed today.
//
// Subscribed users are always allowed and the counters are returned as is.
// Otherwise today's counter is compared against the limit and incremented
// on success. Counters for other days are dropped on increment since only
// today's value is ever read.
func (g Gate) TryConsume(c Counters, today clock.Date, subscribed bool) (Decision, Counters) {
	if subscribed {
		return Allowed, c
	}
	key := today.String()
	used := c[key]
	if used >= g.Limit {
		return Denied, c
	}
	return Allowed, Counters{key: used + 1}
}

// Remaining reports how many free regenerations are left today.
// Subscribed users get -1, meaning unlimited.
func (g Gate) Remaining(c Counters, today clock.Date, subscribed bool) int {
	if subscribed {
		return -1
	}
	left := g.Limit - c[today.String()]
	if left < 0 {
		return 0
	}
	return left
}
