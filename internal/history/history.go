// Package history is the append-only log of served assets.
package history

import (
	"time"
)

// DefaultWindow is the lookback used to avoid repeating assets.
const DefaultWindow = 30 * 24 * time.Hour

// Entry records one asset being served. ServedAt is epoch milliseconds.
type Entry struct {
	AssetID  string `json:"id"`
	ServedAt int64  `json:"servedAt"`
}

// Ledger is the full serve log, oldest first. Entries are never removed.
type Ledger []Entry

// RecentIDs returns ids served strictly less than window before now.
// An entry exactly window old is no longer recent.
func (l Ledger) RecentIDs(window time.Duration, now time.Time) map[string]bool {
	cutoff := window.Milliseconds()
	nowMs := now.UnixMilli()
	ids := make(map[string]bool)
	for _, e := range l {
		if nowMs-e.ServedAt < cutoff {
			ids[e.AssetID] = true
		}
	}
	return ids
}

// Record returns a ledger with one entry per id appended, all stamped now.
// The receiver is left untouched.
func (l Ledger) Record(ids []string, now time.Time) Ledger {
	out := make(Ledger, len(l), len(l)+len(ids))
	copy(out, l)
	ts := now.UnixMilli()
	for _, id := range ids {
		out = append(out, Entry{AssetID: id, ServedAt: ts})
	}
	return out
}
