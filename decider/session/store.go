// Package session holds the client-local state of one client instance: the
// current user and the personality profile. A Store is bound to a single
// client id and persists through a Backend; the chat transcript is never
// stored here.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Wa1tonGan/food-decider/decider/types"
)

const (
	KeyCurrentUser        = "current-user"
	KeyPersonalityProfile = "personality-profile"
)

var ErrInvalidProfile = errors.New("personality profile holds an unknown trait or option")

// Backend is the client-local key/value store. *dao.LocalEntryDAO satisfies it.
type Backend interface {
	Get(ctx context.Context, clientID, key string) (*string, error)
	Set(ctx context.Context, clientID, key, value string) error
	Remove(ctx context.Context, clientID, key string) error
	Clear(ctx context.Context, clientID string) error
}

type Store struct {
	backend  Backend
	clientID string
}

func NewStore(backend Backend, clientID string) *Store {
	return &Store{backend: backend, clientID: clientID}
}

func (s *Store) ClientID() string {
	return s.clientID
}

// CurrentUser returns nil when nobody is signed in.
func (s *Store) CurrentUser(ctx context.Context) (*types.UserIdentity, error) {
	var u types.UserIdentity
	ok, err := s.load(ctx, KeyCurrentUser, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (s *Store) SetCurrentUser(ctx context.Context, u types.UserIdentity) error {
	return s.save(ctx, KeyCurrentUser, u)
}

func (s *Store) ClearCurrentUser(ctx context.Context) error {
	if err := s.backend.Remove(ctx, s.clientID, KeyCurrentUser); err != nil {
		return fmt.Errorf("clear %s: %w", KeyCurrentUser, err)
	}
	return nil
}

// PersonalityProfile returns nil when no profile has been stored. An empty,
// non-nil profile means the questionnaire was skipped without answers.
func (s *Store) PersonalityProfile(ctx context.Context) (types.PersonalityProfile, error) {
	p := types.PersonalityProfile{}
	ok, err := s.load(ctx, KeyPersonalityProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return p, nil
}

// SetPersonalityProfile replaces the stored profile; it never merges.
func (s *Store) SetPersonalityProfile(ctx context.Context, p types.PersonalityProfile) error {
	if !p.Valid() {
		return ErrInvalidProfile
	}
	if p == nil {
		p = types.PersonalityProfile{}
	}
	return s.save(ctx, KeyPersonalityProfile, p)
}

func (s *Store) ClearPersonalityProfile(ctx context.Context) error {
	if err := s.backend.Remove(ctx, s.clientID, KeyPersonalityProfile); err != nil {
		return fmt.Errorf("clear %s: %w", KeyPersonalityProfile, err)
	}
	return nil
}

// HasPersonalityProfile reports whether any profile, even an empty one, is stored.
func (s *Store) HasPersonalityProfile(ctx context.Context) (bool, error) {
	v, err := s.backend.Get(ctx, s.clientID, KeyPersonalityProfile)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", KeyPersonalityProfile, err)
	}
	return v != nil, nil
}

// ClearAll wipes every key of this client.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.backend.Clear(ctx, s.clientID); err != nil {
		return fmt.Errorf("clear local store: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.backend.Get(ctx, s.clientID, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal([]byte(*raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, s.clientID, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
