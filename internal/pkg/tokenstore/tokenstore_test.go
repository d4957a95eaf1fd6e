package tokenstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"reservation-dashboard/internal/pkg/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	store := NewRedis(db)

	t.Run("save", func(t *testing.T) {
		mock.ExpectSet(keyPrefix+"s1", "token-1", time.Hour).SetVal("OK")

		err := store.Save(ctx, "s1", "token-1", time.Hour)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("token found", func(t *testing.T) {
		mock.ExpectGet(keyPrefix + "s1").SetVal("token-1")

		token, err := store.Token(ctx, "s1")

		assert.NoError(t, err)
		assert.Equal(t, "token-1", token)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("token expired", func(t *testing.T) {
		mock.ExpectGet(keyPrefix + "s1").RedisNil()

		_, err := store.Token(ctx, "s1")

		assert.True(t, errors.IsAuthMissing(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty session id skips redis", func(t *testing.T) {
		_, err := store.Token(ctx, "")

		assert.True(t, errors.IsAuthMissing(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis down", func(t *testing.T) {
		mock.ExpectGet(keyPrefix + "s1").SetErr(fmt.Errorf("connection refused"))

		_, err := store.Token(ctx, "s1")

		assert.Equal(t, errors.KindInternal, errors.KindOf(err))
	})

	t.Run("clear", func(t *testing.T) {
		mock.ExpectDel(keyPrefix + "s1").SetVal(1)

		assert.NoError(t, store.Clear(ctx, "s1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	store := newMemory(func() time.Time { return now })

	_, err := store.Token(ctx, "missing")
	assert.True(t, errors.IsAuthMissing(err))

	require.NoError(t, store.Save(ctx, "s1", "token-1", time.Minute))
	token, err := store.Token(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	now = now.Add(time.Minute)
	_, err = store.Token(ctx, "s1")
	assert.True(t, errors.IsAuthMissing(err), "credential must expire with its ttl")

	require.NoError(t, store.Save(ctx, "s2", "token-2", 0))
	require.NoError(t, store.Clear(ctx, "s2"))
	_, err = store.Token(ctx, "s2")
	assert.True(t, errors.IsAuthMissing(err))
}

func TestSessionContext(t *testing.T) {
	ctx := WithSession(context.Background(), "abc")
	assert.Equal(t, "abc", SessionFromContext(ctx))
	assert.Equal(t, "", SessionFromContext(context.Background()))
	assert.NotEqual(t, NewSessionID(), NewSessionID())
}
