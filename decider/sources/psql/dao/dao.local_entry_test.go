package dao

import (
	"context"
	"testing"

	"github.com/Wa1tonGan/food-decider/decider/sources/psql"

	"github.com/stretchr/testify/require"
)

func setupTestDAO(t *testing.T) *LocalEntryDAO {
	t.Helper()
	database, err := psql.NewMemoryDatabase(context.Background())
	require.NoError(t, err, "failed to open sqlite")
	t.Cleanup(database.Close)
	return NewLocalEntryDAO(database.DB)
}

func TestLocalEntryDAO_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	d := setupTestDAO(t)

	v, err := d.Get(ctx, "c1", "current-user")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, d.Set(ctx, "c1", "current-user", `{"name":"a"}`))
	require.NoError(t, d.Set(ctx, "c1", "current-user", `{"name":"b"}`))

	v, err = d.Get(ctx, "c1", "current-user")
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, `{"name":"b"}`, *v)

	require.NoError(t, d.Remove(ctx, "c1", "current-user"))
	require.NoError(t, d.Remove(ctx, "c1", "current-user"))
	v, err = d.Get(ctx, "c1", "current-user")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestLocalEntryDAO_ClearIsPerClient(t *testing.T) {
	ctx := context.Background()
	d := setupTestDAO(t)

	require.NoError(t, d.Set(ctx, "c1", "current-user", "1"))
	require.NoError(t, d.Set(ctx, "c1", "personality-profile", "2"))
	require.NoError(t, d.Set(ctx, "c2", "current-user", "3"))

	require.NoError(t, d.Clear(ctx, "c1"))

	for _, key := range []string{"current-user", "personality-profile"} {
		v, err := d.Get(ctx, "c1", key)
		require.NoError(t, err)
		require.Nil(t, v, key)
	}

	v, err := d.Get(ctx, "c2", "current-user")
	require.NoError(t, err)
	require.Equal(t, "3", *v)
}
