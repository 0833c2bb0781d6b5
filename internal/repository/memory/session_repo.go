package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"social-workflow-web/internal/domain"
)

const sweepInterval = time.Minute

type entry struct {
	data      []byte
	expiresAt time.Time
}

// sessionRepo keeps sessions as encoded snapshots so callers never share
// state with the store.
type sessionRepo struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	items     map[string]entry
	lastSweep time.Time
}

func NewSessionRepository(ttl time.Duration) domain.SessionRepository {
	return &sessionRepo{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry),
	}
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*domain.UISession, error) {
	r.mu.Lock()
	e, ok := r.items[id]
	if ok && r.now().After(e.expiresAt) {
		delete(r.items, id)
		ok = false
	}
	r.mu.Unlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	var s domain.UISession
	if err := json.Unmarshal(e.data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) Save(ctx context.Context, s *domain.UISession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.items[s.ID] = entry{data: data, expiresAt: now.Add(r.ttl)}

	if now.Sub(r.lastSweep) > sweepInterval {
		for id, e := range r.items {
			if now.After(e.expiresAt) {
				delete(r.items, id)
			}
		}
		r.lastSweep = now
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.items, id)
	r.mu.Unlock()
	return nil
}
