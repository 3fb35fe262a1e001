package api

import (
	"context"
	"fmt"

	"coalert/app/models"
)

// HTTPUserService implements UserService against the remote API
type HTTPUserService struct {
	client *Client
}

// NewUserService creates a new HTTPUserService
func NewUserService(client *Client) *HTTPUserService {
	return &HTTPUserService{client: client}
}

// List retrieves all users
func (s *HTTPUserService) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := s.client.get(ctx, "/usuario", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID retrieves a user by ID
func (s *HTTPUserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := s.client.get(ctx, fmt.Sprintf("/usuario/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create registers a new user
func (s *HTTPUserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	var created models.User
	if err := s.client.post(ctx, "/usuario", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update updates an existing user
func (s *HTTPUserService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	var updated models.User
	if err := s.client.put(ctx, fmt.Sprintf("/usuario/%d", user.ID), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes a user by ID
func (s *HTTPUserService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/usuario/%d", id))
}

// Authenticate exchanges a credential pair for the matching user record.
func (s *HTTPUserService) Authenticate(ctx context.Context, creds models.Credentials) (*models.User, error) {
	var user models.User
	if err := s.client.post(ctx, "/usuario/autenticar", creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
