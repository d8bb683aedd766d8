package notify

import (
	"testing"
	"time"

	"github.com/lazypower/lovewhisper/internal/clock"
)

func TestQueueExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	q := NewQueue(clock.Func(func() time.Time { return now }), 0)

	first := q.Push("Copied to clipboard")
	now = now.Add(time.Second)
	q.Push("No native share—copied instead.")

	if got := q.Active(); len(got) != 2 {
		t.Fatalf("active = %d, want 2", len(got))
	}

	now = now.Add(1200 * time.Millisecond) // first is exactly DefaultTTL old
	got := q.Active()
	if len(got) != 1 {
		t.Fatalf("active after expiry = %d, want 1", len(got))
	}
	if got[0].ID == first.ID {
		t.Error("expired toast still active")
	}

	now = now.Add(time.Hour)
	if got := q.Active(); len(got) != 0 {
		t.Errorf("active = %d, want 0", len(got))
	}
}

func TestQueueIDsUnique(t *testing.T) {
	q := NewQueue(nil, time.Minute)
	a := q.Push("a")
	b := q.Push("b")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("ids not unique: %q %q", a.ID, b.ID)
	}
}

func TestDismiss(t *testing.T) {
	q := NewQueue(nil, time.Minute)
	a := q.Push("a")
	q.Push("b")

	if !q.Dismiss(a.ID) {
		t.Fatal("Dismiss returned false for present toast")
	}
	if q.Dismiss(a.ID) {
		t.Error("second Dismiss should return false")
	}
	if got := q.Active(); len(got) != 1 || got[0].Message != "b" {
		t.Errorf("active = %+v", got)
	}
}
