package questionnaire

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/Wa1tonGan/food-decider/decider/types"
)

var (
	ErrInvalidOption = errors.New("answer is not an option of the current question")
	ErrFlowFinished  = errors.New("questionnaire already finished")
)

// ProfileWriter receives the finished profile. *session.Store satisfies it.
type ProfileWriter interface {
	SetPersonalityProfile(ctx context.Context, p types.PersonalityProfile) error
}

// Flow walks the questions in order. It finishes either after the last
// answer or on Skip; a finished flow is discarded by its owner.
type Flow struct {
	mu      sync.Mutex
	writer  ProfileWriter
	index   int
	answers types.PersonalityProfile
	done    bool
}

func NewFlow(w ProfileWriter) *Flow {
	return &Flow{writer: w, answers: types.PersonalityProfile{}}
}

func (f *Flow) Len() int { return len(Questions) }

func (f *Flow) Index() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.index
}

func (f *Flow) Current() Question {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Questions[f.index]
}

// Selected returns the answer already recorded for the current question.
func (f *Flow) Selected() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.answers[Questions[f.index].Trait]
	return v, ok
}

func (f *Flow) Answers() types.PersonalityProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.answers.Clone()
}

func (f *Flow) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Progress is (index+1)/N.
func (f *Flow) Progress() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return float64(f.index+1) / float64(len(Questions))
}

// Answer records value for the current trait and advances. On the last
// question it writes the profile and reports done. If that write fails the
// answer stays recorded and the flow stays open, so answering again retries.
func (f *Flow) Answer(ctx context.Context, value string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return true, ErrFlowFinished
	}
	q := Questions[f.index]
	if !slices.ContainsFunc(q.Options, func(o Option) bool { return o.Value == value }) {
		return false, ErrInvalidOption
	}
	f.answers[q.Trait] = value
	if f.index < len(Questions)-1 {
		f.index++
		return false, nil
	}
	if err := f.finish(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Back moves to the previous question; recorded answers are kept.
func (f *Flow) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done || f.index == 0 {
		return
	}
	f.index--
}

// Skip finishes with whatever answers exist, possibly none.
func (f *Flow) Skip(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return ErrFlowFinished
	}
	return f.finish(ctx)
}

func (f *Flow) finish(ctx context.Context) error {
	if err := f.writer.SetPersonalityProfile(ctx, f.answers.Clone()); err != nil {
		return err
	}
	f.done = true
	return nil
}
