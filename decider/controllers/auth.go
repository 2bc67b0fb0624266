// decider/controllers/auth.go
package controllers

import (
	"context"
	"time"

	"github.com/Wa1tonGan/food-decider/decider/accounts"
	"github.com/Wa1tonGan/food-decider/decider/config"
	"github.com/Wa1tonGan/food-decider/decider/middlewares"
	"github.com/Wa1tonGan/food-decider/decider/utils/logging"
	"github.com/Wa1tonGan/food-decider/decider/utils/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthController struct {
	clients *Clients
	cfg     config.Config
}

func NewAuthController(clients *Clients, cfg config.Config) *AuthController {
	return &AuthController{
		clients: clients,
		cfg:     cfg,
	}
}

// NewClient hands out a fresh client instance, the equivalent of a new
// browser with empty local storage.
func (c *AuthController) NewClient(ctx context.Context) (types.TokenResponse, error) {
	clientID := uuid.NewString()
	token, err := middlewares.IssueClientToken(c.cfg, clientID, time.Now())
	if err != nil {
		return types.TokenResponse{}, err
	}
	logging.AppLogger.Info("client issued", zap.String("client_id", clientID))
	return types.TokenResponse{Token: token, ClientID: clientID}, nil
}

func (c *AuthController) Login(ctx context.Context, clientID string, form accounts.Form) (accounts.Result, error) {
	return c.clients.Get(clientID).Accounts.Login(ctx, form)
}

func (c *AuthController) Signup(ctx context.Context, clientID string, form accounts.Form) (accounts.Result, error) {
	return c.clients.Get(clientID).Accounts.Signup(ctx, form)
}

func (c *AuthController) Guest(ctx context.Context, clientID string) (accounts.Result, error) {
	return c.clients.Get(clientID).Accounts.Guest(ctx)
}
