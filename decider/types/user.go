// decider/types/user.go
package types

import (
	"time"
	"unicode"
)

// UserIdentity is the signed-in (or guest) user of one client instance.
type UserIdentity struct {
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	IsGuest    bool      `json:"isGuest,omitempty"`
	JoinedDate time.Time `json:"joinedDate"`
}

// Initial is the avatar letter shown for the user; "G" when nothing better exists.
func (u *UserIdentity) Initial() string {
	if u == nil || u.Name == "" {
		return "G"
	}
	for _, r := range u.Name {
		return string(unicode.ToUpper(r))
	}
	return "G"
}

// AccountType is "Guest" or "Registered".
func (u *UserIdentity) AccountType() string {
	if u != nil && u.IsGuest {
		return "Guest"
	}
	return "Registered"
}
