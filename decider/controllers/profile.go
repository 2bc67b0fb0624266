package controllers

import (
	"context"

	"github.com/Wa1tonGan/food-decider/decider/accounts"
	"github.com/Wa1tonGan/food-decider/decider/nav"
	"github.com/Wa1tonGan/food-decider/decider/questionnaire"
	"github.com/Wa1tonGan/food-decider/decider/types"
)

type ProfileView struct {
	User           *types.UserIdentity          `json:"user"`
	AccountType    string                       `json:"accountType"`
	Initial        string                       `json:"initial"`
	HasPersonality bool                         `json:"hasPersonality"`
	Personality    []questionnaire.ProfileEntry `json:"personality,omitempty"`
}

type HomeView struct {
	LoggedIn bool `json:"loggedIn"`
}

type ProfileController struct {
	clients *Clients
}

func NewProfileController(clients *Clients) *ProfileController {
	return &ProfileController{clients: clients}
}

func (c *ProfileController) Get(ctx context.Context, clientID string) (ProfileView, error) {
	store := c.clients.Get(clientID).Store
	u, err := store.CurrentUser(ctx)
	if err != nil {
		return ProfileView{}, err
	}
	if u == nil {
		return ProfileView{}, accounts.ErrNotSignedIn
	}
	p, err := store.PersonalityProfile(ctx)
	if err != nil {
		return ProfileView{}, err
	}
	return ProfileView{
		User:           u,
		AccountType:    u.AccountType(),
		Initial:        u.Initial(),
		HasPersonality: p != nil,
		Personality:    questionnaire.Describe(p),
	}, nil
}

func (c *ProfileController) Rename(ctx context.Context, clientID, name string) (ProfileView, error) {
	if _, err := c.clients.Get(clientID).Accounts.Rename(ctx, name); err != nil {
		return ProfileView{}, err
	}
	return c.Get(ctx, clientID)
}

// Logout also clears the in-memory chat so the next user starts clean.
func (c *ProfileController) Logout(ctx context.Context, clientID string) (nav.Page, error) {
	next, err := c.clients.Get(clientID).Accounts.Logout(ctx)
	if err != nil {
		return "", err
	}
	c.clients.Reset(clientID)
	return next, nil
}

func (c *ProfileController) RetakeQuiz(ctx context.Context, clientID string) (nav.Page, error) {
	client := c.clients.Get(clientID)
	next, err := client.Accounts.RetakeQuiz(ctx)
	if err != nil {
		return "", err
	}
	client.EndFlow()
	return next, nil
}

func (c *ProfileController) DeleteAccount(ctx context.Context, clientID string) (nav.Page, error) {
	next, err := c.clients.Get(clientID).Accounts.DeleteAccount(ctx)
	if err != nil {
		return "", err
	}
	c.clients.Reset(clientID)
	return next, nil
}

func (c *ProfileController) Home(ctx context.Context, clientID string) (HomeView, error) {
	in, err := c.clients.Get(clientID).Accounts.LoggedIn(ctx)
	if err != nil {
		return HomeView{}, err
	}
	return HomeView{LoggedIn: in}, nil
}

func (c *ProfileController) Reset(ctx context.Context, clientID string) (nav.Page, error) {
	next, err := c.clients.Get(clientID).Accounts.Reset(ctx)
	if err != nil {
		return "", err
	}
	c.clients.Reset(clientID)
	return next, nil
}
