// decider/utils/types/chat.go
package types

type SendRequest struct {
	Text string `json:"text"`
}

type RateRequest struct {
	Score int `json:"score"`
}

type ModeRequest struct {
	Mode string `json:"mode"`
}

// ChatCommand is one inbound websocket frame. The first frame of a
// connection must carry Token.
type ChatCommand struct {
	Token string `json:"token,omitempty"`
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Score int    `json:"score,omitempty"`
	Mode  string `json:"mode,omitempty"`
}
