// Package engagement derives the daily streak and the cumulative care score.
// Transitions are pure: they take a State and return the next one.
package engagement

import (
	"github.com/lazypower/lovewhisper/internal/clock"
)

// Care score deltas for positive interactions.
const (
	CopyBump        = 1
	ShareBump       = 1
	FavoriteOnBump  = 2
	FavoriteOffBump = 0
)

// State is the persisted engagement record.
type State struct {
	LastActiveDate clock.Date `json:"lastDate"`
	StreakDays     int        `json:"count"`
	CareScore      int        `json:"careScore"`
}

// OnSetServed applies one set-generation event on day today.
//
// Same day keeps the streak, the next calendar day extends it, anything
// else (a gap, or a date before the last one) restarts it at 1.
func OnSetServed(s State, today clock.Date) State {
	switch {
	case s.LastActiveDate.IsZero():
		s.StreakDays = 1
	case today == s.LastActiveDate:
	case today.DaysSince(s.LastActiveDate) == 1:
		s.StreakDays++
	default:
		s.StreakDays = 1
	}
	s.LastActiveDate = today
	return s
}

// BumpCareScore adds delta to the care score. Negative deltas are ignored;
// the score only moves on positive engagement.
func BumpCareScore(s State, delta int) State {
	if delta > 0 {
		s.CareScore += delta
	}
	return s
}
