// Package kv adapts a byte-oriented key/value backend into a JSON store that
// never fails its caller: reads fall back to defaults and write errors are
// logged and swallowed.
package kv

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/lazypower/lovewhisper/internal/logging"
)

// Backend is the host storage substrate.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store reads and writes JSON values. A Store with a nil backend behaves as
// unavailable storage: every read yields the fallback and writes are dropped.
type Store struct {
	backend Backend
	log     logging.Logger
}

// New wraps backend. log may be nil.
func New(backend Backend, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{backend: backend, log: log.With("component", "kv")}
}

// Load decodes the value at key. A missing key, a read error or undecodable
// JSON all return fallback.
func Load[T any](ctx context.Context, s *Store, key string, fallback T) T {
	if s == nil || s.backend == nil {
		return fallback
	}
	data, err := s.backend.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "kv read failed, using default", "key", key, "err", err)
		return fallback
	}
	if len(data) == 0 {
		return fallback
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Warn(ctx, "kv value corrupt, using default", "key", key, "err", err)
		return fallback
	}
	return v
}

// Save encodes v and writes it to key. Failures are logged, never returned;
// the caller's in-memory copy stays authoritative.
func (s *Store) Save(ctx context.Context, key string, v any) {
	if s == nil || s.backend == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn(ctx, "kv encode failed", "key", key, "err", err)
		return
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		s.log.Warn(ctx, "kv write failed", "key", key, "err", err)
	}
}

// Memory is an in-process Backend. It is safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemory returns an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}
