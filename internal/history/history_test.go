package history

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecentIDsBoundary(t *testing.T) {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	l := Ledger{
		{AssetID: "exact30", ServedAt: now.Add(-30 * day).UnixMilli()},
		{AssetID: "day29", ServedAt: now.Add(-29 * day).UnixMilli()},
		{AssetID: "justInside", ServedAt: now.Add(-30*day + time.Millisecond).UnixMilli()},
		{AssetID: "old", ServedAt: now.Add(-90 * day).UnixMilli()},
	}

	got := l.RecentIDs(DefaultWindow, now)
	if got["exact30"] {
		t.Error("entry exactly 30 days old should be excluded")
	}
	if !got["day29"] {
		t.Error("entry 29 days old should be included")
	}
	if !got["justInside"] {
		t.Error("entry 1ms inside the window should be included")
	}
	if got["old"] {
		t.Error("90 day old entry should be excluded")
	}
}

func TestRecentIDsAnyRecentEntryCounts(t *testing.T) {
	now := time.Now()
	l := Ledger{
		{AssetID: "a", ServedAt: now.Add(-60 * 24 * time.Hour).UnixMilli()},
		{AssetID: "a", ServedAt: now.Add(-time.Hour).UnixMilli()},
	}
	if !l.RecentIDs(DefaultWindow, now)["a"] {
		t.Error("id with one recent entry should be recent")
	}
}

func TestRecordAppendsWithoutDedup(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	var l Ledger
	l = l.Record([]string{"a", "b"}, now)
	l2 := l.Record([]string{"a"}, now.Add(time.Second))

	if len(l) != 2 {
		t.Fatalf("original ledger len = %d, want 2", len(l))
	}
	if len(l2) != 3 {
		t.Fatalf("ledger len = %d, want 3", len(l2))
	}
	if l2[2].AssetID != "a" || l2[2].ServedAt != now.Add(time.Second).UnixMilli() {
		t.Errorf("appended entry = %+v", l2[2])
	}
	if l2[0].ServedAt != now.UnixMilli() {
		t.Errorf("first entry ServedAt = %d", l2[0].ServedAt)
	}
}

func TestRecordEmptyIDs(t *testing.T) {
	l := Ledger{{AssetID: "x", ServedAt: 1}}
	if got := l.Record(nil, time.Now()); len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestLedgerJSONShape(t *testing.T) {
	data, err := json.Marshal(Ledger{{AssetID: "t1", ServedAt: 42}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `[{"id":"t1","servedAt":42}]` {
		t.Errorf("json = %s", data)
	}
}
