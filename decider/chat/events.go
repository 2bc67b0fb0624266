package chat

import "github.com/Wa1tonGan/food-decider/decider/types"

type EventType string

const (
	EventMessage EventType = "message"
	EventLoading EventType = "loading"
	EventRating  EventType = "rating"
	EventReset   EventType = "reset"
	EventMode    EventType = "mode"
)

// Event describes one state change, in the order it happened.
type Event struct {
	Type          EventType          `json:"type"`
	Message       *types.ChatMessage `json:"message,omitempty"`
	Loading       bool               `json:"isLoading,omitempty"`
	RatingVisible bool               `json:"ratingVisible,omitempty"`
	Mode          types.Mode         `json:"mode,omitempty"`
}

// Observe registers fn for every later event and returns a function that
// removes it. fn runs on the goroutine that changed the state, outside the
// session lock, so it may call Snapshot.
func (s *Session) Observe(fn func(Event)) func() {
	s.mu.Lock()
	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Session) emit(ev Event) {
	s.mu.Lock()
	fns := make([]func(Event), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
