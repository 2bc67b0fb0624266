// Package accounts turns the login, signup, guest and profile actions into
// Session Store writes and tells the caller where to navigate next. There is
// no real authentication: credentials are validated for shape only.
package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Wa1tonGan/food-decider/decider/nav"
	"github.com/Wa1tonGan/food-decider/decider/types"
)

const (
	GuestEmail = "guest@fooddecider.com"
	GuestName  = "Guest User"
)

var (
	ErrNotSignedIn  = errors.New("no user is signed in")
	ErrNameRequired = errors.New("name is required")
)

// Store is the part of session.Store the account actions use.
type Store interface {
	CurrentUser(ctx context.Context) (*types.UserIdentity, error)
	SetCurrentUser(ctx context.Context, u types.UserIdentity) error
	ClearCurrentUser(ctx context.Context) error
	HasPersonalityProfile(ctx context.Context) (bool, error)
	ClearPersonalityProfile(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

type Accounts struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Accounts {
	return &Accounts{store: store, now: time.Now}
}

// WithClock is for tests.
func (a *Accounts) WithClock(now func() time.Time) *Accounts {
	a.now = now
	return a
}

// Result is the outcome of a form submission. When Errors is non-empty nothing
// was stored and Next is empty.
type Result struct {
	User   *types.UserIdentity `json:"user,omitempty"`
	Errors FieldErrors         `json:"errors,omitempty"`
	Next   nav.Page            `json:"next,omitempty"`
}

// Login signs in with the part of the email before '@' as the name.
func (a *Accounts) Login(ctx context.Context, f Form) (Result, error) {
	if errs := Validate(f, false); !errs.Empty() {
		return Result{Errors: errs}, nil
	}
	name, _, _ := strings.Cut(f.Email, "@")
	return a.signIn(ctx, types.UserIdentity{Email: f.Email, Name: name, JoinedDate: a.now()})
}

func (a *Accounts) Signup(ctx context.Context, f Form) (Result, error) {
	if errs := Validate(f, true); !errs.Empty() {
		return Result{Errors: errs}, nil
	}
	return a.signIn(ctx, types.UserIdentity{Email: f.Email, Name: f.Name, JoinedDate: a.now()})
}

func (a *Accounts) signIn(ctx context.Context, u types.UserIdentity) (Result, error) {
	if err := a.store.SetCurrentUser(ctx, u); err != nil {
		return Result{}, err
	}
	has, err := a.store.HasPersonalityProfile(ctx)
	if err != nil {
		return Result{}, err
	}
	next := nav.Questionnaire
	if has {
		next = nav.Chat
	}
	return Result{User: &u, Next: next}, nil
}

// Guest always continues to the questionnaire, even when a profile from an
// earlier session is still stored.
func (a *Accounts) Guest(ctx context.Context) (Result, error) {
	u := types.UserIdentity{Email: GuestEmail, Name: GuestName, IsGuest: true, JoinedDate: a.now()}
	if err := a.store.SetCurrentUser(ctx, u); err != nil {
		return Result{}, err
	}
	return Result{User: &u, Next: nav.Questionnaire}, nil
}

// Rename edits the current user's name in place.
func (a *Accounts) Rename(ctx context.Context, name string) (*types.UserIdentity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	u, err := a.store.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotSignedIn
	}
	u.Name = name
	if err := a.store.SetCurrentUser(ctx, *u); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout forgets the user but keeps the personality profile.
func (a *Accounts) Logout(ctx context.Context) (nav.Page, error) {
	if err := a.store.ClearCurrentUser(ctx); err != nil {
		return "", err
	}
	return nav.Login, nil
}

// RetakeQuiz drops the profile until the questionnaire is completed again.
func (a *Accounts) RetakeQuiz(ctx context.Context) (nav.Page, error) {
	if err := a.store.ClearPersonalityProfile(ctx); err != nil {
		return "", err
	}
	return nav.Questionnaire, nil
}

// DeleteAccount wipes all local state.
func (a *Accounts) DeleteAccount(ctx context.Context) (nav.Page, error) {
	if err := a.store.ClearAll(ctx); err != nil {
		return "", err
	}
	return nav.Login, nil
}

// Reset is the home page's "clear all data & restart".
func (a *Accounts) Reset(ctx context.Context) (nav.Page, error) {
	if err := a.store.ClearAll(ctx); err != nil {
		return "", err
	}
	return nav.Home, nil
}

// LoggedIn reports whether a user is stored.
func (a *Accounts) LoggedIn(ctx context.Context) (bool, error) {
	u, err := a.store.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}
