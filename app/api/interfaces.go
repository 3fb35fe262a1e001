// Package api is the client for the Co-Alert REST API. Each remote resource
// gets an interface and an HTTP implementation over a shared JSON client, so
// everything above this package can be tested against in-memory fakes.
package api

import (
	"context"

	"coalert/app/models"
)

// PostService defines remote access to posts
type PostService interface {
	List(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) (*models.Post, error)
	Delete(ctx context.Context, id int) error
	ListByUser(ctx context.Context, userID int) ([]*models.Post, error)
	ListByCategory(ctx context.Context, categoryID int) ([]*models.Post, error)
	ListByLocation(ctx context.Context, locationID int) ([]*models.Post, error)
}

// CommentService defines remote access to comments
type CommentService interface {
	List(ctx context.Context) ([]*models.Comment, error)
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int) ([]*models.Comment, error)
	ListReplies(ctx context.Context, commentID int) ([]*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// LikeService defines remote access to like relations and statuses
type LikeService interface {
	// Toggle flips the (user, target) relation and returns the target's new
	// status as computed by the server.
	Toggle(ctx context.Context, like *models.Like) (*models.LikeStatus, error)
	PostStatus(ctx context.Context, postID, userID int) (*models.LikeStatus, error)
	CommentStatus(ctx context.Context, commentID, userID int) (*models.LikeStatus, error)
	// ListByUser returns every like relation owned by the user, across all
	// posts and comments.
	ListByUser(ctx context.Context, userID int) ([]*models.Like, error)
}

// UserService defines remote access to user accounts
type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int) error
	// Authenticate exchanges a credential pair for the matching user record.
	// It doubles as the session-resolution probe: there is no token.
	Authenticate(ctx context.Context, creds models.Credentials) (*models.User, error)
}

// CategoryService defines remote access to disaster categories
type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id int) error
	ListByType(ctx context.Context, categoryType string) ([]*models.Category, error)
	ListByTitle(ctx context.Context, title string) ([]*models.Category, error)
}

// LocationService defines remote access to locations
type LocationService interface {
	List(ctx context.Context) ([]*models.Location, error)
	GetByID(ctx context.Context, id int) (*models.Location, error)
	Create(ctx context.Context, location *models.Location) (*models.Location, error)
	Update(ctx context.Context, location *models.Location) (*models.Location, error)
	Delete(ctx context.Context, id int) error
	ListByCity(ctx context.Context, city string) ([]*models.Location, error)
	ListByState(ctx context.Context, state string) ([]*models.Location, error)
	GetByCEP(ctx context.Context, cep string) (*models.Location, error)
}
