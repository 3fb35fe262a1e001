package api

import (
	"context"
	"fmt"

	"coalert/app/models"
)

// HTTPLikeService implements LikeService against the remote API
type HTTPLikeService struct {
	client *Client
}

// NewLikeService creates a new HTTPLikeService
func NewLikeService(client *Client) *HTTPLikeService {
	return &HTTPLikeService{client: client}
}

// Toggle flips a like. The payload must target exactly one of post or
// comment; the response carries the target's new {totalLikes, isLiked}.
func (s *HTTPLikeService) Toggle(ctx context.Context, like *models.Like) (*models.LikeStatus, error) {
	if err := like.Validate(); err != nil {
		return nil, fmt.Errorf("invalid like: %v", err)
	}
	var status models.LikeStatus
	if err := s.client.post(ctx, "/like/toggle", like, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// PostStatus retrieves a post's like status for the given user
func (s *HTTPLikeService) PostStatus(ctx context.Context, postID, userID int) (*models.LikeStatus, error) {
	var status models.LikeStatus
	path := fmt.Sprintf("/like/postagem/%d?usuarioId=%d", postID, userID)
	if err := s.client.get(ctx, path, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// CommentStatus retrieves a comment's like status for the given user
func (s *HTTPLikeService) CommentStatus(ctx context.Context, commentID, userID int) (*models.LikeStatus, error) {
	var status models.LikeStatus
	path := fmt.Sprintf("/like/comentario/%d?usuarioId=%d", commentID, userID)
	if err := s.client.get(ctx, path, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ListByUser retrieves every like relation owned by a user
func (s *HTTPLikeService) ListByUser(ctx context.Context, userID int) ([]*models.Like, error) {
	var likes []*models.Like
	if err := s.client.get(ctx, fmt.Sprintf("/like/usuario/%d", userID), &likes); err != nil {
		return nil, err
	}
	return likes, nil
}
