// Package chat implements one chat conversation: the transcript, the single
// in-flight send guarded by the loading flag, and the pending rating of the
// last recommendation.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Wa1tonGan/food-decider/decider/types"
	"github.com/Wa1tonGan/food-decider/decider/utils/logging"

	"go.uber.org/zap"
)

// FailureText is appended as an error entry when a recommendation fails.
const FailureText = "Sorry, something went wrong. Please try again."

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrBusy         = errors.New("a message is already being answered")
	ErrNoPending    = errors.New("no recommendation to rate")
	ErrInvalidScore = errors.New("rating score must be between 1 and 5")
	ErrInvalidMode  = errors.New("unknown chat mode")
)

// Recommender is the subset of recommend.Service a chat needs.
type Recommender interface {
	GetFoodRecommendation(ctx context.Context, mode types.Mode, userInput string, profile types.PersonalityProfile) (types.Recommendation, error)
	SubmitRating(ctx context.Context, recommendationID string, score int) error
}

// ProfileSource supplies the current personality profile. *session.Store satisfies it.
type ProfileSource interface {
	PersonalityProfile(ctx context.Context) (types.PersonalityProfile, error)
}

type State struct {
	Mode          types.Mode            `json:"mode"`
	Transcript    []types.ChatMessage   `json:"transcript"`
	Pending       *types.Recommendation `json:"pendingRecommendation,omitempty"`
	Loading       bool                  `json:"isLoading"`
	RatingVisible bool                  `json:"ratingVisible"`
}

type Session struct {
	svc     Recommender
	profile ProfileSource
	now     func() time.Time

	mu            sync.Mutex
	mode          types.Mode
	transcript    []types.ChatMessage
	pending       *types.Recommendation
	loading       bool
	ratingVisible bool
	observers     map[int]func(Event)
	nextObserver  int
}

type Option func(*Session)

// WithClock replaces time.Now for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession starts in decide mode with an empty transcript. profile may be nil.
func NewSession(svc Recommender, profile ProfileSource, opts ...Option) *Session {
	s := &Session{
		svc:       svc,
		profile:   profile,
		now:       time.Now,
		mode:      types.ModeDecide,
		observers: map[int]func(Event){},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	st := State{
		Mode:          s.mode,
		Transcript:    append([]types.ChatMessage{}, s.transcript...),
		Loading:       s.loading,
		RatingVisible: s.ratingVisible,
	}
	if s.pending != nil {
		p := *s.pending
		st.Pending = &p
	}
	return st
}

func (s *Session) Mode() types.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Loading reports whether a send is waiting on the recommender.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SetMode switches the chat style; the transcript is kept.
func (s *Session) SetMode(mode types.Mode) error {
	if !mode.Valid() {
		return ErrInvalidMode
	}
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	s.emit(Event{Type: EventMode, Mode: mode})
	return nil
}

// Send appends the user's text, asks the recommender and appends its answer
// or an error entry. Blank text and sends while another is in flight are
// rejected without touching the transcript. A failed recommendation is not
// an error of Send: it shows up as an error entry.
func (s *Session) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrBusy
	}
	userMsg := types.ChatMessage{Kind: types.KindUser, Text: text, CreatedAt: s.now()}
	s.transcript = append(s.transcript, userMsg)
	s.loading = true
	mode := s.mode
	s.mu.Unlock()

	s.emit(Event{Type: EventMessage, Message: &userMsg})
	s.emit(Event{Type: EventLoading, Loading: true})

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.emit(Event{Type: EventLoading, Loading: false})
	}()

	rec, err := s.svc.GetFoodRecommendation(ctx, mode, text, s.currentProfile(ctx))

	s.mu.Lock()
	var reply types.ChatMessage
	if err != nil {
		logging.ErrorLogger.Error("recommendation failed", zap.String("mode", string(mode)), zap.Error(err))
		reply = types.ChatMessage{Kind: types.KindError, Text: FailureText, CreatedAt: s.now()}
	} else {
		reply = types.ChatMessage{Kind: types.KindAssistant, Text: rec.Recommendation, CreatedAt: s.now()}
		s.pending = &rec
		s.ratingVisible = true
	}
	s.transcript = append(s.transcript, reply)
	visible := s.ratingVisible
	s.mu.Unlock()

	s.emit(Event{Type: EventMessage, Message: &reply})
	if err == nil {
		s.emit(Event{Type: EventRating, RatingVisible: visible})
	}
	return nil
}

// Rate submits score for the most recent recommendation. Without a pending
// recommendation, or with a score outside 1..5, nothing happens. A failed
// submission keeps the prompt visible and is returned to the caller.
func (s *Session) Rate(ctx context.Context, score int) error {
	if !types.ValidScore(score) {
		return ErrInvalidScore
	}
	s.mu.Lock()
	if s.pending == nil {
		s.mu.Unlock()
		return ErrNoPending
	}
	id := s.pending.ID
	s.mu.Unlock()

	if err := s.svc.SubmitRating(ctx, id, score); err != nil {
		logging.ErrorLogger.Error("Failed to submit rating", zap.String("id", id), zap.Int("rating", score), zap.Error(err))
		return err
	}

	s.mu.Lock()
	// a new chat or a newer recommendation may have replaced the one we rated
	if s.pending == nil || s.pending.ID != id {
		s.mu.Unlock()
		return nil
	}
	s.ratingVisible = false
	s.mu.Unlock()
	s.emit(Event{Type: EventRating, RatingVisible: false})
	return nil
}

// NewChat clears the transcript and the pending rating; the mode is kept.
func (s *Session) NewChat() {
	s.mu.Lock()
	s.transcript = nil
	s.pending = nil
	s.ratingVisible = false
	s.mu.Unlock()
	s.emit(Event{Type: EventReset})
}

func (s *Session) currentProfile(ctx context.Context) types.PersonalityProfile {
	if s.profile == nil {
		return nil
	}
	p, err := s.profile.PersonalityProfile(ctx)
	if err != nil {
		logging.ErrorLogger.Error("personality profile unavailable", zap.Error(err))
		return nil
	}
	return p
}
