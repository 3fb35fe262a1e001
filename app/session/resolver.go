package session

import (
	"context"
	"errors"
	"fmt"

	"coalert/app/api"
	"coalert/app/models"
)

var (
	// ErrAnonymous means no credential is stored; the caller should proceed
	// read-only.
	ErrAnonymous = errors.New("no authenticated session")
	// ErrSessionExpired means a credential existed but no longer
	// authenticates; the store has been cleared and the user must log in
	// again.
	ErrSessionExpired = errors.New("session expired")
)

// CredentialSource is the slice of Store the resolver needs.
type CredentialSource interface {
	Load() (email, password string, err error)
	Clear() error
}

// Resolver determines the currently authenticated user.
type Resolver interface {
	ResolveCurrentUser(ctx context.Context) (*models.User, error)
}

// AuthResolver resolves the session by replaying the stored pair against
// the authenticate endpoint. There is no token and nothing is cached: every
// resolution re-authenticates.
type AuthResolver struct {
	creds CredentialSource
	users api.UserService
}

// NewResolver creates a new AuthResolver
func NewResolver(creds CredentialSource, users api.UserService) *AuthResolver {
	return &AuthResolver{creds: creds, users: users}
}

// ResolveCurrentUser returns the authenticated user, ErrAnonymous when no
// credential is stored, or ErrSessionExpired when the stored credential is
// malformed or rejected by the server. Expiry clears the store.
func (r *AuthResolver) ResolveCurrentUser(ctx context.Context) (*models.User, error) {
	email, password, err := r.creds.Load()
	if err != nil {
		if errors.Is(err, ErrNoCredential) {
			return nil, ErrAnonymous
		}
		if errors.Is(err, ErrMalformedCredential) {
			// Load already removed the corrupt value.
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	user, err := r.users.Authenticate(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		if clearErr := r.creds.Clear(); clearErr != nil {
			return nil, clearErr
		}
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	return user, nil
}
