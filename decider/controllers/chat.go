// decider/controllers/chat.go
package controllers

import (
	"context"

	"github.com/Wa1tonGan/food-decider/decider/chat"
	"github.com/Wa1tonGan/food-decider/decider/types"
	"github.com/Wa1tonGan/food-decider/decider/utils/logging"

	"go.uber.org/zap"
)

type ChatView struct {
	chat.State
	Headline     string `json:"headline"`
	Intro        string `json:"intro"`
	Placeholder  string `json:"placeholder"`
	RatingPrompt string `json:"ratingPrompt,omitempty"`
	UserName     string `json:"userName"`
	UserInitial  string `json:"userInitial"`
}

type ChatController struct {
	clients *Clients
}

func NewChatController(clients *Clients) *ChatController {
	return &ChatController{clients: clients}
}

func (c *ChatController) Session(clientID string) *chat.Session {
	return c.clients.Get(clientID).Chat
}

func (c *ChatController) View(ctx context.Context, clientID string) ChatView {
	client := c.clients.Get(clientID)
	st := client.Chat.Snapshot()
	v := ChatView{
		State:       st,
		Headline:    chat.Headline(st.Mode),
		Intro:       chat.Intro(st.Mode),
		Placeholder: chat.Placeholder(st.Mode),
		UserName:    "Guest",
	}
	if st.RatingVisible && !st.Loading {
		v.RatingPrompt = chat.RatingPrompt
	}
	u, err := client.Store.CurrentUser(ctx)
	if err != nil {
		logging.ErrorLogger.Error("current user unavailable", zap.String("client_id", clientID), zap.Error(err))
	}
	if u != nil && u.Name != "" {
		v.UserName = u.Name
	}
	v.UserInitial = u.Initial()
	return v
}

func (c *ChatController) Send(ctx context.Context, clientID, text string) (ChatView, error) {
	if err := c.Session(clientID).Send(ctx, text); err != nil {
		return ChatView{}, err
	}
	return c.View(ctx, clientID), nil
}

func (c *ChatController) Rate(ctx context.Context, clientID string, score int) (ChatView, error) {
	if err := c.Session(clientID).Rate(ctx, score); err != nil {
		return ChatView{}, err
	}
	return c.View(ctx, clientID), nil
}

func (c *ChatController) NewChat(ctx context.Context, clientID string) ChatView {
	c.Session(clientID).NewChat()
	return c.View(ctx, clientID)
}

func (c *ChatController) SetMode(ctx context.Context, clientID string, mode types.Mode) (ChatView, error) {
	if err := c.Session(clientID).SetMode(mode); err != nil {
		return ChatView{}, err
	}
	return c.View(ctx, clientID), nil
}
