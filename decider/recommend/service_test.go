package recommend

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/Wa1tonGan/food-decider/decider/types"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instant(seed uint64) Options {
	return Options{Seed: seed}
}

func TestGetFoodRecommendation_ModeScopedTexts(t *testing.T) {
	ctx := context.Background()
	m := NewMockService(instant(7))
	for _, mode := range []types.Mode{types.ModeDecide, types.ModeRecommend} {
		allowed := CannedTexts(mode)
		for i := 0; i < 50; i++ {
			rec, err := m.GetFoodRecommendation(ctx, mode, "anything", nil)
			require.NoError(t, err)
			assert.Contains(t, allowed, rec.Recommendation)
			assert.NotEmpty(t, rec.Reasoning)
		}
	}
}

func TestGetFoodRecommendation_SeedIsDeterministic(t *testing.T) {
	ctx := context.Background()
	pick := func() []string {
		m := NewMockService(instant(42))
		var out []string
		for i := 0; i < 10; i++ {
			rec, err := m.GetFoodRecommendation(ctx, types.ModeRecommend, "soup", nil)
			require.NoError(t, err)
			out = append(out, rec.Recommendation)
		}
		return out
	}
	assert.Equal(t, pick(), pick())
}

func TestGetFoodRecommendation_WithRand(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	want := catalog[types.ModeDecide][rand.New(rand.NewPCG(1, 2)).IntN(len(catalog[types.ModeDecide]))]

	m := NewMockService(Options{}, WithRand(r))
	rec, err := m.GetFoodRecommendation(context.Background(), types.ModeDecide, "x", nil)
	require.NoError(t, err)
	assert.Equal(t, want.recommendation, rec.Recommendation)
}

func TestGetFoodRecommendation_UniqueIDs(t *testing.T) {
	m := NewMockService(instant(3))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		rec, err := m.GetFoodRecommendation(context.Background(), types.ModeDecide, "x", nil)
		require.NoError(t, err)
		require.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestGetFoodRecommendation_CustomIDs(t *testing.T) {
	n := 0
	m := NewMockService(instant(3), WithIDGenerator(func() string {
		n++
		return "rec-" + strconv.Itoa(n)
	}))
	rec, err := m.GetFoodRecommendation(context.Background(), types.ModeDecide, "x", nil)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", rec.ID)
}

func TestGetFoodRecommendation_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewMockService(instant(1)).GetFoodRecommendation(ctx, types.Mode("surprise"), "x", nil)
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = NewMockService(Options{FailRecommend: true}).GetFoodRecommendation(ctx, types.ModeDecide, "x", nil)
	assert.ErrorIs(t, err, ErrRecommendationFail)
}

func TestGetFoodRecommendation_HonorsDelayAndCancel(t *testing.T) {
	m := NewMockService(Options{RecommendDelay: 30 * time.Millisecond, Seed: 1})
	start := time.Now()
	_, err := m.GetFoodRecommendation(context.Background(), types.ModeDecide, "x", nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	slow := NewMockService(Options{RecommendDelay: time.Hour, Seed: 1})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = slow.GetFoodRecommendation(ctx, types.ModeDecide, "x", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSubmitRating(t *testing.T) {
	ctx := context.Background()
	m := NewMockService(instant(1))

	assert.NoError(t, m.SubmitRating(ctx, "never-issued", 3))
	assert.ErrorIs(t, m.SubmitRating(ctx, "x", 0), ErrInvalidScore)
	assert.ErrorIs(t, m.SubmitRating(ctx, "x", 6), ErrInvalidScore)

	failing := NewMockService(Options{FailRating: true})
	assert.ErrorIs(t, failing.SubmitRating(ctx, "x", 5), ErrRatingFail)
}

func TestSavePersonality(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, NewMockService(instant(1)).SavePersonality(ctx, types.PersonalityProfile{}))
	assert.ErrorIs(t, NewMockService(Options{FailSave: true}).SavePersonality(ctx, nil), ErrSaveFail)
}

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)

	path := filepath.Join(t.TempDir(), "mock.properties")
	require.NoError(t, os.WriteFile(path, []byte("recommend.delay = 10ms\nrating.fail = true\nseed = 9\n"), 0o644))

	opts, err = LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, opts.RecommendDelay)
	assert.Equal(t, DefaultRatingDelay, opts.RatingDelay)
	assert.True(t, opts.FailRating)
	assert.False(t, opts.FailRecommend)
	assert.Equal(t, uint64(9), opts.Seed)

	_, err = LoadOptions(filepath.Join(t.TempDir(), "missing.properties"))
	assert.Error(t, err)
}

func TestOptionsFromString(t *testing.T) {
	props := properties.MustLoadString("save.delay = 1s\nsave.fail = true")
	opts := optionsFrom(props, Options{})
	assert.Equal(t, time.Second, opts.SaveDelay)
	assert.True(t, opts.FailSave)
}
