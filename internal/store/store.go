package store

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/models"
)

// Store owns the entity graph exclusively. Consumers read snapshots and
// dispatch intents; nothing outside this package mutates entities directly.
// The intent methods serialize through one mutex, so each dispatch sees the
// snapshot produced by the previous one — the HTTP goroutines get the same
// one-intent-at-a-time model the reducer was written for.
type Store struct {
	mu     sync.RWMutex
	state  State
	logger *zap.Logger

	subMu   sync.Mutex
	subs    map[int]chan models.Notification
	nextSub int
}

func New(initial State, logger *zap.Logger) *Store {
	return &Store{
		state:  initial,
		logger: logger,
		subs:   make(map[int]chan models.Notification),
	}
}

// Snapshot returns the current state value. The snapshot is immutable by
// convention: callers read it, derive views from it, and must not write
// through its slices.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// newID returns a fresh collision-resistant identifier. IDs are opaque,
// globally unique across entity kinds, and never reassigned.
func newID() string {
	return uuid.NewString()
}

// Subscribe registers a live notification feed. The returned cancel func
// must be called when the consumer goes away. Slow consumers drop
// notifications rather than stall a dispatch.
func (s *Store) Subscribe() (<-chan models.Notification, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan models.Notification, 16)
	s.subs[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (s *Store) publish(n models.Notification) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- n:
		default:
			s.logger.Warn("notification subscriber lagging, dropping",
				zap.String("notification_id", n.ID))
		}
	}
}
