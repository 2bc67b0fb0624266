// decider/types/chat.go
package types

import "time"

type Mode string

const (
	ModeDecide    Mode = "decide"
	ModeRecommend Mode = "recommend"
)

func (m Mode) Valid() bool {
	return m == ModeDecide || m == ModeRecommend
}

type MessageKind string

const (
	KindUser      MessageKind = "user"
	KindAssistant MessageKind = "assistant"
	KindError     MessageKind = "error"
)

type ChatMessage struct {
	Kind      MessageKind `json:"kind"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"createdAt"`
}

type Recommendation struct {
	ID             string `json:"id"`
	Recommendation string `json:"recommendation"`
	Reasoning      string `json:"reasoning"`
}

// Rating is submitted and then discarded; nothing reads it back.
type Rating struct {
	RecommendationID string `json:"recommendationId"`
	Score            int    `json:"score"`
}

const (
	MinScore = 1
	MaxScore = 5
)

func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}
