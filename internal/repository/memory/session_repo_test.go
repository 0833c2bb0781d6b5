package memory

import (
	"context"
	"testing"
	"time"

	"social-workflow-web/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := NewSessionRepository(10 * time.Minute).(*sessionRepo)
	repo.now = func() time.Time { return now }

	t.Run("missing session", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("save returns an independent copy", func(t *testing.T) {
		s := domain.NewUISession("s1")
		s.Signup.BusinessName = "Joe's Cafe"
		require.NoError(t, repo.Save(ctx, s))

		s.Signup.BusinessName = "mutated after save"

		got, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "Joe's Cafe", got.Signup.BusinessName)
		assert.Equal(t, domain.DefaultBusinessType, got.Signup.BusinessType)
	})

	t.Run("expired session is discarded", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, domain.NewUISession("s2")))
		now = now.Add(11 * time.Minute)

		_, err := repo.Get(ctx, "s2")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, domain.NewUISession("s3")))
		require.NoError(t, repo.Delete(ctx, "s3"))

		_, err := repo.Get(ctx, "s3")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}
