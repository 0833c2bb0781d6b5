package usecase

import (
	"context"
	"errors"
	"hash/fnv"
	"net/http"
	"sync"
	"time"

	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/apperror"
)

const lockStripes = 64

// SessionStore serializes load-reduce-save per session so two requests of the
// same visitor never overwrite each other's snapshot. Every usecase touching
// the same sessions must share one SessionStore.
type SessionStore struct {
	repo  domain.SessionRepository
	locks [lockStripes]sync.Mutex
}

func NewSessionStore(repo domain.SessionRepository) *SessionStore {
	return &SessionStore{repo: repo}
}

func (s *SessionStore) lock(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockStripes]
}

// load returns the session, or a freshly mounted one if it expired or never existed.
func (s *SessionStore) load(ctx context.Context, id string) (*domain.UISession, error) {
	if id == "" {
		return nil, apperror.BadRequest("Session is required")
	}
	sess, err := s.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.NewUISession(id), nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return sess, nil
}

// update applies fn to the session under its lock and saves the result.
// Nothing is saved when fn fails.
func (s *SessionStore) update(ctx context.Context, id string, fn func(*domain.UISession) error) (*domain.UISession, error) {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, apperror.Internal(err)
	}
	return sess, nil
}

// reducerError maps a rejected reducer input to a client error.
func reducerError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrUnknownOption):
		return apperror.New(http.StatusBadRequest, err.Error(), err)
	}
	return err
}
