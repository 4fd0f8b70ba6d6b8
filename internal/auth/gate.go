// Package auth implements the password gate and the duress wipe policy.
package auth

import (
	"errors"

	"github.com/hushbook/hushbook/internal/logging"
	"github.com/hushbook/hushbook/internal/storage"
)

// ErrIncorrectPassword is returned by Submit when the entered string matches
// neither stored password. Non-fatal: the caller may re-prompt indefinitely.
var ErrIncorrectPassword = errors.New("incorrect password")

// State is the gate's authentication state.
type State int

const (
	// Locked means an access password is configured and not yet matched.
	Locked State = iota
	// Unlocked means no password is configured, or it was matched.
	Unlocked
)

// Gate decides whether app access is granted. It reads the stored passwords
// at the moment of each check and never caches them, so a password changed
// from the settings surface takes effect on the next check.
//
// Precedence is duress-first: when the entered string matches the duress
// password, the wipe fires even if the same string also matches the access
// password.
type Gate struct {
	creds    *storage.Credentials
	contacts *storage.ContactRepo
	unlocked bool
}

// NewGate creates a gate over the given credential store. The contact
// repository is the wipe target.
func NewGate(creds *storage.Credentials, contacts *storage.ContactRepo) *Gate {
	return &Gate{creds: creds, contacts: contacts}
}

// State returns the gate's current state. Before any successful Submit it is
// Locked exactly when an access password is present in storage.
func (g *Gate) State() (State, error) {
	if g.unlocked {
		return Unlocked, nil
	}

	_, configured, err := g.creds.Access()
	if err != nil {
		return Locked, err
	}
	if !configured {
		return Unlocked, nil
	}
	return Locked, nil
}

// Submit checks an entered password and returns true when access is granted.
//
// A duress match runs the wipe policy to completion first; wipe failure is
// logged but never blocks authentication, since access availability takes
// priority over guaranteed wipe completion. A wrong entry returns false with
// ErrIncorrectPassword.
func (g *Gate) Submit(entered string) (bool, error) {
	duress, duressSet, err := g.creds.Duress()
	if err != nil {
		return false, err
	}

	if duressSet && entered == duress {
		if err := Wipe(g.contacts); err != nil {
			logging.Error("duress wipe failed", "error", err)
		}
		g.unlocked = true
		return true, nil
	}

	access, accessSet, err := g.creds.Access()
	if err != nil {
		return false, err
	}

	if accessSet && entered == access {
		g.unlocked = true
		return true, nil
	}

	return false, ErrIncorrectPassword
}
