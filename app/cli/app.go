// Package cli wires the Co-Alert client together: every screen of the
// source app becomes a subcommand, and the session gate decides which of
// them a logged-out user can reach.
package cli

import (
	"io"
	"time"

	"coalert/app/api"
	"coalert/app/services"
	"coalert/app/session"
	"coalert/config"
)

// App holds the collaborators the commands share.
type App struct {
	store      *session.Store
	posts      api.PostService
	comments   api.CommentService
	likes      api.LikeService
	users      api.UserService
	categories api.CategoryService
	locations  api.LocationService
	resolver   session.Resolver
	notifier   services.Notifier
	out        io.Writer
	now        func() time.Time
}

// NewApp builds the command handler over a real HTTP client.
func NewApp(cfg *config.Config, store *session.Store, out io.Writer) *App {
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	users := api.NewUserService(client)
	return &App{
		store:      store,
		posts:      api.NewPostService(client),
		comments:   api.NewCommentService(client),
		likes:      api.NewLikeService(client),
		users:      users,
		categories: api.NewCategoryService(client),
		locations:  api.NewLocationService(client),
		resolver:   session.NewResolver(store, users),
		notifier:   services.LogNotifier{},
		out:        out,
		now:        time.Now,
	}
}

// newPostDetail creates the synchronizer for one post-detail screen.
func (a *App) newPostDetail(postID int) *services.PostDetail {
	return services.NewPostDetail(postID, a.posts, a.comments, a.likes, a.resolver, a.notifier)
}
