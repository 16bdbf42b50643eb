package storage

import (
	"context"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_SaveLoad(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	store := NewRedisStore(client, "test:organizer:")

	ctx := context.Background()

	// absent key
	_, ok, err := store.Load(ctx, AssignmentsKey)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Save(ctx, AssignmentsKey, `[{"id":"1"}]`))

	v, ok, err := store.Load(ctx, AssignmentsKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"1"}]`, v)

	// wholesale overwrite
	require.NoError(t, store.Save(ctx, AssignmentsKey, "[]"))
	v, ok, err = store.Load(ctx, AssignmentsKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", v)
}

func TestRedisStore_KeysIndependent(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	store := NewRedisStore(client, "")

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, CoursesKey, "courses-blob"))

	_, ok, err := store.Load(ctx, AssignmentsKey)
	require.NoError(t, err)
	require.False(t, ok)
}
