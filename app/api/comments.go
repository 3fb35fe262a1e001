package api

import (
	"context"
	"fmt"

	"coalert/app/models"
)

// HTTPCommentService implements CommentService against the remote API
type HTTPCommentService struct {
	client *Client
}

// NewCommentService creates a new HTTPCommentService
func NewCommentService(client *Client) *HTTPCommentService {
	return &HTTPCommentService{client: client}
}

// List retrieves all comments
func (s *HTTPCommentService) List(ctx context.Context) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := s.client.get(ctx, "/comentario", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByID retrieves a comment by ID
func (s *HTTPCommentService) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	var comment models.Comment
	if err := s.client.get(ctx, fmt.Sprintf("/comentario/%d", id), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost retrieves all comments on a post, replies included
func (s *HTTPCommentService) ListByPost(ctx context.Context, postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := s.client.get(ctx, fmt.Sprintf("/comentario/postagem/%d", postID), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListReplies retrieves the direct replies of a comment
func (s *HTTPCommentService) ListReplies(ctx context.Context, commentID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := s.client.get(ctx, fmt.Sprintf("/comentario/respostas/%d", commentID), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create creates a new comment; the server assigns id and timestamp
func (s *HTTPCommentService) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	var created models.Comment
	if err := s.client.post(ctx, "/comentario", comment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a comment. The backend expects the complete record, not a
// partial patch.
func (s *HTTPCommentService) Update(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	var updated models.Comment
	if err := s.client.put(ctx, fmt.Sprintf("/comentario/%d", comment.ID), comment, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete deletes a comment by ID
func (s *HTTPCommentService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/comentario/%d", id))
}
