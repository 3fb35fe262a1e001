package api

import (
	"context"
	"fmt"

	"coalert/app/models"
)

// HTTPPostService implements PostService against the remote API
type HTTPPostService struct {
	client *Client
}

// NewPostService creates a new HTTPPostService
func NewPostService(client *Client) *HTTPPostService {
	return &HTTPPostService{client: client}
}

// List retrieves all posts
func (s *HTTPPostService) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	if err := s.client.get(ctx, "/postagem", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID retrieves a post by ID
func (s *HTTPPostService) GetByID(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post
	if err := s.client.get(ctx, fmt.Sprintf("/postagem/%d", id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Create creates a new post
func (s *HTTPPostService) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	var created models.Post
	if err := s.client.post(ctx, "/postagem", post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update updates an existing post
func (s *HTTPPostService) Update(ctx context.Context, post *models.Post) (*models.Post, error) {
	var updated models.Post
	if err := s.client.put(ctx, fmt.Sprintf("/postagem/%d", post.ID), post, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes a post by ID
func (s *HTTPPostService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/postagem/%d", id))
}

// ListByUser retrieves the posts authored by a user
func (s *HTTPPostService) ListByUser(ctx context.Context, userID int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := s.client.get(ctx, fmt.Sprintf("/postagem/usuario/%d", userID), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByCategory retrieves the posts under a disaster category
func (s *HTTPPostService) ListByCategory(ctx context.Context, categoryID int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := s.client.get(ctx, fmt.Sprintf("/postagem/categoria-desastre/%d", categoryID), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByLocation retrieves the posts for a location
func (s *HTTPPostService) ListByLocation(ctx context.Context, locationID int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := s.client.get(ctx, fmt.Sprintf("/postagem/localizacao/%d", locationID), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
