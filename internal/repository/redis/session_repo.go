package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"social-workflow-web/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "sw:session:"

type sessionRepo struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewSessionRepository stores sessions as JSON values that expire after ttl.
// Every Save refreshes the expiry.
func NewSessionRepository(client *goredis.Client, ttl time.Duration) domain.SessionRepository {
	return &sessionRepo{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*domain.UISession, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var s domain.UISession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (r *sessionRepo) Save(ctx context.Context, s *domain.UISession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
