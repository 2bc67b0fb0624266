package controllers

import (
	"context"

	"github.com/Wa1tonGan/food-decider/decider/nav"
	"github.com/Wa1tonGan/food-decider/decider/questionnaire"
	"github.com/Wa1tonGan/food-decider/decider/types"
	"github.com/Wa1tonGan/food-decider/decider/utils/logging"

	"go.uber.org/zap"
)

type QuestionnaireView struct {
	Index    int                      `json:"index"`
	Total    int                      `json:"total"`
	Progress float64                  `json:"progress"`
	Question questionnaire.Question   `json:"question"`
	Selected string                   `json:"selected,omitempty"`
	Answers  types.PersonalityProfile `json:"answers"`
	Done     bool                     `json:"done"`
	Next     nav.Page                 `json:"next,omitempty"`
}

type QuestionnaireController struct {
	clients *Clients
}

func NewQuestionnaireController(clients *Clients) *QuestionnaireController {
	return &QuestionnaireController{clients: clients}
}

func view(f *questionnaire.Flow) QuestionnaireView {
	selected, _ := f.Selected()
	return QuestionnaireView{
		Index:    f.Index(),
		Total:    f.Len(),
		Progress: f.Progress(),
		Question: f.Current(),
		Selected: selected,
		Answers:  f.Answers(),
		Done:     f.Done(),
	}
}

func (c *QuestionnaireController) State(clientID string) QuestionnaireView {
	return view(c.clients.Get(clientID).Flow())
}

func (c *QuestionnaireController) Answer(ctx context.Context, clientID, value string) (QuestionnaireView, error) {
	client := c.clients.Get(clientID)
	f := client.Flow()
	done, err := f.Answer(ctx, value)
	if err != nil {
		return view(f), err
	}
	v := view(f)
	if done {
		c.finish(ctx, client, f)
		v.Next = nav.Chat
	}
	return v, nil
}

func (c *QuestionnaireController) Back(clientID string) QuestionnaireView {
	f := c.clients.Get(clientID).Flow()
	f.Back()
	return view(f)
}

func (c *QuestionnaireController) Skip(ctx context.Context, clientID string) (QuestionnaireView, error) {
	client := c.clients.Get(clientID)
	f := client.Flow()
	if err := f.Skip(ctx); err != nil {
		return view(f), err
	}
	c.finish(ctx, client, f)
	v := view(f)
	v.Next = nav.Chat
	return v, nil
}

// finish mirrors the profile to the mock backend and discards the flow. The
// local store already holds the profile, so a failed mirror is only logged.
func (c *QuestionnaireController) finish(ctx context.Context, client *Client, f *questionnaire.Flow) {
	if err := c.clients.Service().SavePersonality(ctx, f.Answers()); err != nil {
		logging.ErrorLogger.Error("save personality failed", zap.String("client_id", client.ID), zap.Error(err))
	}
	client.EndFlow()
}
