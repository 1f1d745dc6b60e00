package ironring

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultMaxAttempts is the number of failed logins before the terminal
// locks.
const DefaultMaxAttempts = 3

// AccountStore provides the credential and role permission records.
type AccountStore interface {
	LoadCredentials() (map[string]Credential, error)
	LoadPermissions() (Permissions, error)
}

// CredentialReader reads login input. Password must not echo what is typed.
type CredentialReader interface {
	Line(ctx context.Context, prompt string) (string, error)
	Password(ctx context.Context, prompt string) (string, error)
}

// Authenticator establishes a Session from a username and password.
type Authenticator struct {
	Accounts    AccountStore
	MaxAttempts int // DefaultMaxAttempts when zero

	// OnFailure, if set, is called after each failed attempt with the
	// number of attempts left.
	OnFailure func(remaining int)
}

// Authenticate reads credentials until they match a provisioned account, and
// returns the Session for it. After MaxAttempts consecutive failures it
// returns ErrLockedOut, the caller is expected to terminate.
//
// The account records are read again for every attempt. If they cannot be
// read the error wraps ErrStoreUnavailable and no further attempt is made.
// Input errors are returned as is.
func (a *Authenticator) Authenticate(ctx context.Context, in CredentialReader) (*Session, error) {
	attempts := a.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		creds, err := a.Accounts.LoadCredentials()
		if err != nil {
			return nil, err
		}
		perms, err := a.Accounts.LoadPermissions()
		if err != nil {
			return nil, err
		}

		username, err := in.Line(ctx, "USERNAME")
		if err != nil {
			return nil, err
		}
		password, err := in.Password(ctx, "PASSWORD")
		if err != nil {
			return nil, err
		}

		if c, ok := creds[username]; ok && c.Matches(password) {
			set, ok := perms[c.Role]
			if !ok {
				set = NewPermissionSet()
			}
			slog.Info("login", "user", username, "role", c.Role)
			return &Session{Username: username, Role: c.Role, Permissions: set}, nil
		}

		remaining := attempts - attempt
		slog.Info("login-failed", "user", username, "remaining", remaining)
		if a.OnFailure != nil {
			a.OnFailure(remaining)
		}
	}
	return nil, fmt.Errorf("%w: %d failed attempts", ErrLockedOut, attempts)
}
