package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coalert/app/models"
)

type fakeCreds struct {
	email    string
	password string
	loadErr  error
	cleared  bool
}

func (f *fakeCreds) Load() (string, string, error) {
	if f.loadErr != nil {
		return "", "", f.loadErr
	}
	return f.email, f.password, nil
}

func (f *fakeCreds) Clear() error {
	f.cleared = true
	return nil
}

type fakeUserService struct {
	user     *models.User
	authErr  error
	lastAuth models.Credentials
	calls    int
}

func (f *fakeUserService) Authenticate(_ context.Context, creds models.Credentials) (*models.User, error) {
	f.calls++
	f.lastAuth = creds
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.user, nil
}

func (f *fakeUserService) List(context.Context) ([]*models.User, error)       { return nil, nil }
func (f *fakeUserService) GetByID(context.Context, int) (*models.User, error) { return f.user, nil }
func (f *fakeUserService) Create(_ context.Context, u *models.User) (*models.User, error) {
	return u, nil
}
func (f *fakeUserService) Update(_ context.Context, u *models.User) (*models.User, error) {
	return u, nil
}
func (f *fakeUserService) Delete(context.Context, int) error { return nil }

func TestResolveCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("replays stored pair", func(t *testing.T) {
		creds := &fakeCreds{email: "ana@example.com", password: "s3cret"}
		users := &fakeUserService{user: &models.User{ID: 42, Name: "Ana", Email: "ana@example.com"}}
		resolver := NewResolver(creds, users)

		user, err := resolver.ResolveCurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, 42, user.ID)
		assert.Equal(t, "ana@example.com", users.lastAuth.Email)
		assert.Equal(t, "s3cret", users.lastAuth.Password)
		assert.False(t, creds.cleared)
	})

	t.Run("no credential is anonymous", func(t *testing.T) {
		creds := &fakeCreds{loadErr: ErrNoCredential}
		users := &fakeUserService{}
		resolver := NewResolver(creds, users)

		_, err := resolver.ResolveCurrentUser(ctx)
		assert.ErrorIs(t, err, ErrAnonymous)
		assert.Zero(t, users.calls, "no auth probe without a credential")
	})

	t.Run("malformed credential is expired", func(t *testing.T) {
		creds := &fakeCreds{loadErr: ErrMalformedCredential}
		resolver := NewResolver(creds, &fakeUserService{})

		_, err := resolver.ResolveCurrentUser(ctx)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("rejected credential clears the store", func(t *testing.T) {
		creds := &fakeCreds{email: "ana@example.com", password: "wrong"}
		users := &fakeUserService{authErr: errors.New("401")}
		resolver := NewResolver(creds, users)

		_, err := resolver.ResolveCurrentUser(ctx)
		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.True(t, creds.cleared)
	})

	t.Run("every resolution re-authenticates", func(t *testing.T) {
		creds := &fakeCreds{email: "ana@example.com", password: "s3cret"}
		users := &fakeUserService{user: &models.User{ID: 42, Name: "Ana", Email: "ana@example.com"}}
		resolver := NewResolver(creds, users)

		for i := 0; i < 3; i++ {
			_, err := resolver.ResolveCurrentUser(ctx)
			require.NoError(t, err)
		}
		assert.Equal(t, 3, users.calls)
	})
}
