package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Wa1tonGan/food-decider/decider/session"
	"github.com/Wa1tonGan/food-decider/decider/sources/psql"
	"github.com/Wa1tonGan/food-decider/decider/sources/psql/dao"
	"github.com/Wa1tonGan/food-decider/decider/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStores(t *testing.T, clientIDs ...string) []*session.Store {
	t.Helper()
	db, err := psql.NewMemoryDatabase(context.Background())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	backend := dao.NewLocalEntryDAO(db.DB)
	stores := make([]*session.Store, 0, len(clientIDs))
	for _, id := range clientIDs {
		stores = append(stores, session.NewStore(backend, id))
	}
	return stores
}

func TestStore_CurrentUserLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t, "client-1")[0]

	u, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	joined := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.SetCurrentUser(ctx, types.UserIdentity{Email: "a@b.com", Name: "a", JoinedDate: joined}))

	u, err = s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "a@b.com", u.Email)
	assert.Equal(t, "a", u.Name)
	assert.False(t, u.IsGuest)
	assert.True(t, joined.Equal(u.JoinedDate))

	u.Name = "renamed"
	require.NoError(t, s.SetCurrentUser(ctx, *u))
	u, err = s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "renamed", u.Name)

	require.NoError(t, s.ClearCurrentUser(ctx))
	u, err = s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestStore_ProfileReplacedNotMerged(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t, "client-1")[0]

	require.NoError(t, s.SetPersonalityProfile(ctx, types.PersonalityProfile{
		types.TraitSpiceLevel: "mild",
		types.TraitMealSize:   "large",
	}))
	require.NoError(t, s.SetPersonalityProfile(ctx, types.PersonalityProfile{
		types.TraitCuisineStyle: "asian",
	}))

	p, err := s.PersonalityProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.PersonalityProfile{types.TraitCuisineStyle: "asian"}, p)

	require.NoError(t, s.ClearPersonalityProfile(ctx))
	p, err = s.PersonalityProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestStore_EmptyProfileIsPresent(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t, "client-1")[0]

	has, err := s.HasPersonalityProfile(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.SetPersonalityProfile(ctx, nil))

	has, err = s.HasPersonalityProfile(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	p, err := s.PersonalityProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Empty(t, p)
}

func TestStore_RejectsInvalidProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t, "client-1")[0]

	err := s.SetPersonalityProfile(ctx, types.PersonalityProfile{types.TraitSpiceLevel: "volcanic"})
	assert.ErrorIs(t, err, session.ErrInvalidProfile)

	has, err := s.HasPersonalityProfile(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStore_ClearAllIsolatesClients(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores(t, "client-1", "client-2")
	a, b := stores[0], stores[1]

	for _, s := range stores {
		require.NoError(t, s.SetCurrentUser(ctx, types.UserIdentity{Name: s.ClientID()}))
		require.NoError(t, s.SetPersonalityProfile(ctx, types.PersonalityProfile{types.TraitMealSize: "small"}))
	}

	require.NoError(t, a.ClearAll(ctx))

	u, err := a.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
	p, err := a.PersonalityProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)

	u, err = b.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "client-2", u.Name)
}

type failingBackend struct{ err error }

func (f failingBackend) Get(context.Context, string, string) (*string, error) { return nil, f.err }
func (f failingBackend) Set(context.Context, string, string, string) error    { return f.err }
func (f failingBackend) Remove(context.Context, string, string) error         { return f.err }
func (f failingBackend) Clear(context.Context, string) error                  { return f.err }

func TestStore_SurfacesBackendErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	s := session.NewStore(failingBackend{err: boom}, "client-1")

	_, err := s.CurrentUser(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.SetCurrentUser(ctx, types.UserIdentity{}), boom)
	assert.ErrorIs(t, s.ClearCurrentUser(ctx), boom)
	assert.ErrorIs(t, s.SetPersonalityProfile(ctx, types.PersonalityProfile{}), boom)
	assert.ErrorIs(t, s.ClearPersonalityProfile(ctx), boom)
	assert.ErrorIs(t, s.ClearAll(ctx), boom)
}

type staticBackend struct{ failingBackend }

func (staticBackend) Get(context.Context, string, string) (*string, error) {
	v := "{not json"
	return &v, nil
}

func TestStore_CorruptValue(t *testing.T) {
	s := session.NewStore(staticBackend{}, "client-1")
	_, err := s.CurrentUser(context.Background())
	assert.ErrorContains(t, err, "decode current-user")
}
