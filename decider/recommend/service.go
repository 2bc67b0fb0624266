// Package recommend is the mock recommendation backend: canned answers picked
// at random after a simulated network delay. The user's input and profile are
// accepted but do not influence the pick.
package recommend

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Wa1tonGan/food-decider/decider/types"
	"github.com/Wa1tonGan/food-decider/decider/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownMode        = errors.New("unknown chat mode")
	ErrInvalidScore       = errors.New("rating score must be between 1 and 5")
	ErrRecommendationFail = errors.New("recommendation service error")
	ErrRatingFail         = errors.New("rating service error")
	ErrSaveFail           = errors.New("personality service error")
)

// Service is what the chat and questionnaire layers call.
type Service interface {
	GetFoodRecommendation(ctx context.Context, mode types.Mode, userInput string, profile types.PersonalityProfile) (types.Recommendation, error)
	SubmitRating(ctx context.Context, recommendationID string, score int) error
	SavePersonality(ctx context.Context, profile types.PersonalityProfile) error
}

const (
	DefaultRecommendDelay = 1500 * time.Millisecond
	DefaultRatingDelay    = 500 * time.Millisecond
	DefaultSaveDelay      = 300 * time.Millisecond
)

type Options struct {
	RecommendDelay time.Duration
	RatingDelay    time.Duration
	SaveDelay      time.Duration
	FailRecommend  bool
	FailRating     bool
	FailSave       bool
	// Seed fixes the random source; zero means a random seed.
	Seed uint64
}

func DefaultOptions() Options {
	return Options{
		RecommendDelay: DefaultRecommendDelay,
		RatingDelay:    DefaultRatingDelay,
		SaveDelay:      DefaultSaveDelay,
	}
}

type MockService struct {
	opts Options

	mu    sync.Mutex
	rng   *rand.Rand
	newID func() string
}

type Option func(*MockService)

// WithRand replaces the random source used to pick canned answers.
func WithRand(r *rand.Rand) Option {
	return func(m *MockService) { m.rng = r }
}

// WithIDGenerator replaces uuid-based recommendation ids.
func WithIDGenerator(fn func() string) Option {
	return func(m *MockService) { m.newID = fn }
}

func NewMockService(opts Options, extra ...Option) *MockService {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	m := &MockService{
		opts:  opts,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		newID: uuid.NewString,
	}
	for _, o := range extra {
		o(m)
	}
	return m
}

func (m *MockService) GetFoodRecommendation(ctx context.Context, mode types.Mode, userInput string, profile types.PersonalityProfile) (types.Recommendation, error) {
	defer logging.LogDuration(ctx, "recommend_get_food_recommendation")()
	responses, ok := catalog[mode]
	if !ok {
		return types.Recommendation{}, ErrUnknownMode
	}
	if err := sleepCtx(ctx, m.opts.RecommendDelay); err != nil {
		return types.Recommendation{}, err
	}
	if m.opts.FailRecommend {
		return types.Recommendation{}, ErrRecommendationFail
	}

	m.mu.Lock()
	pick := responses[m.rng.IntN(len(responses))]
	id := m.newID()
	m.mu.Unlock()

	logging.AppLogger.Info("mock recommendation served",
		zap.String("mode", string(mode)),
		zap.String("id", id),
		zap.Int("input_len", len(userInput)),
		zap.Int("profile_traits", len(profile)),
	)
	return types.Recommendation{ID: id, Recommendation: pick.recommendation, Reasoning: pick.reasoning}, nil
}

// SubmitRating accepts any id, issued or not.
func (m *MockService) SubmitRating(ctx context.Context, recommendationID string, score int) error {
	defer logging.LogDuration(ctx, "recommend_submit_rating")()
	if !types.ValidScore(score) {
		return ErrInvalidScore
	}
	if err := sleepCtx(ctx, m.opts.RatingDelay); err != nil {
		return err
	}
	if m.opts.FailRating {
		return ErrRatingFail
	}
	logging.AppLogger.Info("mock rating submitted",
		zap.String("id", recommendationID),
		zap.Int("rating", score),
	)
	return nil
}

func (m *MockService) SavePersonality(ctx context.Context, profile types.PersonalityProfile) error {
	defer logging.LogDuration(ctx, "recommend_save_personality")()
	if err := sleepCtx(ctx, m.opts.SaveDelay); err != nil {
		return err
	}
	if m.opts.FailSave {
		return ErrSaveFail
	}
	logging.AppLogger.Info("mock personality saved", zap.Any("personality", profile))
	return nil
}

// sleepCtx waits d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
