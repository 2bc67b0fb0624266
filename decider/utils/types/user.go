// decider/utils/types/user.go
package types

type TokenResponse struct {
	Token    string `json:"token"`
	ClientID string `json:"client_id"`
}

type RenameRequest struct {
	Name string `json:"name"`
}

type NextResponse struct {
	Next string `json:"next"`
}

type AnswerRequest struct {
	Value string `json:"value"`
}
