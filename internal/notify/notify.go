// Package notify holds short-lived, display-only notifications ("toasts").
// Expiry is evaluated lazily when toasts are read; nothing runs in the
// background.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lazypower/lovewhisper/internal/clock"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 2200 * time.Millisecond

// Toast is one transient message.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Queue collects toasts. It is safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	clock  clock.Clock
	ttl    time.Duration
	toasts []Toast
}

// NewQueue returns a queue whose toasts expire after ttl (DefaultTTL if <= 0).
func NewQueue(c clock.Clock, ttl time.Duration) *Queue {
	if c == nil {
		c = clock.System{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{clock: c, ttl: ttl}
}

// Push adds a toast and returns it.
func (q *Queue) Push(msg string) Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	t := Toast{ID: uuid.NewString(), Message: msg, CreatedAt: q.clock.Now()}
	q.toasts = append(q.toasts, t)
	return t
}

// Active drops expired toasts and returns the rest, oldest first.
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := q.clock.Now()
	live := q.toasts[:0]
	for _, t := range q.toasts {
		if now.Sub(t.CreatedAt) < q.ttl {
			live = append(live, t)
		}
	}
	q.toasts = live
	return append([]Toast(nil), live...)
}

// Dismiss removes a toast by id. It reports whether the toast was present.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return true
		}
	}
	return false
}
