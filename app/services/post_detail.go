// Package services holds the client-side business logic. Its centerpiece is
// PostDetail, the state synchronizer behind the post-detail screen: it loads
// one post, its full comment thread and every per-target like status, then
// keeps that view consistent across mutations without ever updating
// optimistically.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"coalert/app/api"
	"coalert/app/models"
	"coalert/app/session"
)

// State is the lifecycle of one post-detail screen instance.
type State int

const (
	// StateLoading is the initial state, before Load completes.
	StateLoading State = iota
	// StateReady means the view is consistent and mutations are accepted.
	StateReady
	// StateMutating means one mutation is in flight; further mutations are
	// rejected until it settles.
	StateMutating
	// StateFailed is terminal: the initial post fetch failed and the caller
	// must navigate away.
	StateFailed
	// StateClosed is terminal: the screen unmounted or its post was deleted.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateMutating:
		return "mutating"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrNotReady        = errors.New("another operation is still in progress")
	ErrEmptyComment    = errors.New("comment body is required")
	ErrNotOwner        = errors.New("comment does not belong to the current user")
	ErrUnknownComment  = errors.New("comment not found in the loaded thread")
	ErrNoPendingDelete = errors.New("no delete pending confirmation")
	ErrDeletePending   = errors.New("a delete is already pending confirmation")
	ErrClosed          = errors.New("screen is closed")
)

// pendingDelete is the first phase of a two-phase delete.
type pendingDelete struct {
	active    bool
	isPost    bool
	commentID int
}

// PostDetail synchronizes one post, its comment thread and all like state
// for a single screen instance. All exported methods are safe for concurrent
// use; a response that arrives after Close never mutates state.
type PostDetail struct {
	posts    api.PostService
	comments api.CommentService
	likes    api.LikeService
	resolver session.Resolver
	notifier Notifier

	postID int

	mu            sync.Mutex
	state         State
	generation    int
	closed        bool
	currentUser   *models.User
	userLikes     []*models.Like
	post          *models.Post
	postStatus    models.LikeStatus
	commentList   []*models.Comment
	commentStatus map[int]models.LikeStatus
	expanded      map[int]bool
	draft         string
	replyTo       *int
	pending       pendingDelete
}

// NewPostDetail creates the synchronizer for one post. Call Load before
// anything else.
func NewPostDetail(postID int, posts api.PostService, comments api.CommentService,
	likes api.LikeService, resolver session.Resolver, notifier Notifier) *PostDetail {
	return &PostDetail{
		posts:         posts,
		comments:      comments,
		likes:         likes,
		resolver:      resolver,
		notifier:      notifier,
		postID:        postID,
		state:         StateLoading,
		commentStatus: make(map[int]models.LikeStatus),
		expanded:      make(map[int]bool),
	}
}

// State returns the current lifecycle state.
func (d *PostDetail) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// CurrentUser returns the resolved user, or nil when anonymous.
func (d *PostDetail) CurrentUser() *models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.currentUser
}

// Load runs the ordered initialization sequence. Only the post fetch itself
// is fatal; a dead session degrades to read-only viewing and individual
// like-status failures degrade to {0,false} for that comment alone.
func (d *PostDetail) Load(ctx context.Context) error {
	d.mu.Lock()
	if d.state != StateLoading {
		d.mu.Unlock()
		return fmt.Errorf("load called in state %s", d.state)
	}
	gen := d.generation
	d.mu.Unlock()

	// Steps 1 and 2: session plus the user's full like set. Everything
	// after this derives isLiked from that set, so ordering matters.
	user, err := d.resolver.ResolveCurrentUser(ctx)
	if err != nil {
		if errors.Is(err, session.ErrSessionExpired) {
			d.notifier.Notify("Atenção", "Sessão expirada. Por favor, faça login novamente.", LevelWarning)
		} else if !errors.Is(err, session.ErrAnonymous) {
			log.Printf("post detail %d: session resolution failed: %v", d.postID, err)
		}
		user = nil
	}

	var userLikes []*models.Like
	if user != nil {
		userLikes, err = d.likes.ListByUser(ctx, user.ID)
		if err != nil {
			log.Printf("post detail %d: could not load like set for user %d: %v", d.postID, user.ID, err)
			userLikes = nil
		}
	}

	// Step 3: the post. This is the screen's identity; failure is fatal.
	post, err := d.posts.GetByID(ctx, d.postID)
	if err != nil {
		d.mu.Lock()
		if d.generation == gen && !d.closed {
			d.state = StateFailed
		}
		d.mu.Unlock()
		d.notifier.Notify("Erro", "Não foi possível carregar o alerta.", LevelDanger)
		return fmt.Errorf("failed to load post %d: %w", d.postID, err)
	}

	// Step 4: the post's aggregate like status, with isLiked recomputed
	// from the user's own relation set rather than trusted blindly.
	postStatus := d.fetchPostStatus(ctx, post, user, userLikes)

	// Step 5: the comment list. Not fatal; the post can render without it.
	comments, err := d.comments.ListByPost(ctx, d.postID)
	if err != nil {
		log.Printf("post detail %d: could not load comments: %v", d.postID, err)
		d.notifier.Notify("Erro", "Não foi possível carregar os comentários.", LevelDanger)
		comments = nil
	}

	// Step 6: per-comment like statuses, fetched concurrently.
	statuses := d.fetchCommentStatuses(ctx, comments, user, userLikes)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != gen || d.closed {
		return ErrClosed
	}
	d.currentUser = user
	d.userLikes = userLikes
	d.post = post
	d.postStatus = postStatus
	d.commentList = comments
	d.commentStatus = statuses
	d.state = StateReady
	return nil
}

// fetchPostStatus resolves step 4. A failed status fetch falls back to the
// post's aggregate count; isLiked always comes from the relation set.
func (d *PostDetail) fetchPostStatus(ctx context.Context, post *models.Post,
	user *models.User, userLikes []*models.Like) models.LikeStatus {
	userID := 0
	if user != nil {
		userID = user.ID
	}
	status := models.LikeStatus{TotalLikes: post.Likes}
	if fetched, err := d.likes.PostStatus(ctx, post.ID, userID); err != nil {
		log.Printf("post detail %d: could not load post like status: %v", post.ID, err)
	} else {
		status.TotalLikes = fetched.TotalLikes
	}
	status.IsLiked = models.LikesPost(userLikes, post.ID)
	return status
}

// fetchCommentStatuses issues one status fetch per comment concurrently and
// waits for all of them. A single failure defaults that comment to {0,false}
// and never cancels or aborts the rest.
func (d *PostDetail) fetchCommentStatuses(ctx context.Context, comments []*models.Comment,
	user *models.User, userLikes []*models.Like) map[int]models.LikeStatus {
	statuses := make(map[int]models.LikeStatus, len(comments))
	if len(comments) == 0 {
		return statuses
	}
	userID := 0
	if user != nil {
		userID = user.ID
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs *multierror.Error
	)
	for _, c := range comments {
		wg.Add(1)
		go func(c *models.Comment) {
			defer wg.Done()
			status := models.LikeStatus{}
			if fetched, err := d.likes.CommentStatus(ctx, c.ID, userID); err != nil {
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("comment %d: %w", c.ID, err))
				mu.Unlock()
			} else {
				status.TotalLikes = fetched.TotalLikes
			}
			status.IsLiked = models.LikesComment(userLikes, c.ID)
			mu.Lock()
			statuses[c.ID] = status
			mu.Unlock()
		}(c)
	}
	wg.Wait()

	if err := errs.ErrorOrNil(); err != nil {
		log.Printf("post detail %d: some like statuses unavailable: %v", d.postID, err)
	}
	return statuses
}

// beginMutation moves Ready → Mutating and returns the generation the
// mutation belongs to.
func (d *PostDetail) beginMutation() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch d.state {
	case StateReady:
		d.state = StateMutating
		return d.generation, nil
	case StateClosed:
		return 0, ErrClosed
	default:
		return 0, ErrNotReady
	}
}

// settle returns the screen to Ready if this mutation's generation is still
// current. Every mutation path must end here, success or failure; the view
// is never left in Mutating.
func (d *PostDetail) settle(gen int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != gen || d.closed {
		return
	}
	if d.state == StateMutating {
		d.state = StateReady
	}
}

// ToggleLikePost flips the current user's like on the post. Anonymous
// viewers get a silent no-op: no network call, no notification.
func (d *PostDetail) ToggleLikePost(ctx context.Context) error {
	d.mu.Lock()
	if d.currentUser == nil {
		d.mu.Unlock()
		return nil
	}
	userID := d.currentUser.ID
	postID := d.post.ID
	d.mu.Unlock()

	gen, err := d.beginMutation()
	if err != nil {
		return err
	}
	defer d.settle(gen)

	status, err := d.likes.Toggle(ctx, &models.Like{UserID: userID, PostID: &postID})
	if err != nil {
		d.notifier.Notify("Erro", "Não foi possível curtir o alerta.", LevelDanger)
		return fmt.Errorf("failed to toggle post like: %w", err)
	}

	// The heart only flips after the server confirmed; other views derive
	// isLiked from the relation set, so that is re-fetched as well.
	userLikes, likesErr := d.likes.ListByUser(ctx, userID)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != gen || d.closed {
		return ErrClosed
	}
	d.postStatus = *status
	if likesErr != nil {
		log.Printf("post detail %d: could not refresh like set: %v", d.postID, likesErr)
	} else {
		d.userLikes = userLikes
	}
	return nil
}

// ToggleLikeComment flips the current user's like on one comment.
func (d *PostDetail) ToggleLikeComment(ctx context.Context, commentID int) error {
	d.mu.Lock()
	if d.currentUser == nil {
		d.mu.Unlock()
		return nil
	}
	if !d.hasCommentLocked(commentID) {
		d.mu.Unlock()
		return ErrUnknownComment
	}
	userID := d.currentUser.ID
	d.mu.Unlock()

	gen, err := d.beginMutation()
	if err != nil {
		return err
	}
	defer d.settle(gen)

	status, err := d.likes.Toggle(ctx, &models.Like{UserID: userID, CommentID: &commentID})
	if err != nil {
		d.notifier.Notify("Erro", "Não foi possível curtir o comentário.", LevelDanger)
		return fmt.Errorf("failed to toggle comment like: %w", err)
	}

	userLikes, likesErr := d.likes.ListByUser(ctx, userID)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != gen || d.closed {
		return ErrClosed
	}
	d.commentStatus[commentID] = *status
	if likesErr != nil {
		log.Printf("post detail %d: could not refresh like set: %v", d.postID, likesErr)
	} else {
		d.userLikes = userLikes
	}
	return nil
}

// SetDraft replaces the compose field's text.
func (d *PostDetail) SetDraft(body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft = body
}

// Draft returns the compose field's text.
func (d *PostDetail) Draft() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}

// SetReplyTo marks the next submitted comment as a reply to the given
// comment. Replying to a reply is rejected: the thread is one level deep.
func (d *PostDetail) SetReplyTo(commentID int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.commentList {
		if c.ID == commentID {
			if c.IsReply() {
				return errors.New("cannot reply to a reply")
			}
			id := commentID
			d.replyTo = &id
			return nil
		}
	}
	return ErrUnknownComment
}

// ClearReplyTo removes the replying-to marker.
func (d *PostDetail) ClearReplyTo() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.replyTo = nil
}

// AddComment submits the current draft. The list is re-fetched rather than
// appended locally, because the server assigns the id and timestamp and owns
// the canonical ordering. Draft and reply marker are cleared only on
// success, so a failed submit never loses typed text.
func (d *PostDetail) AddComment(ctx context.Context) error {
	d.mu.Lock()
	if d.currentUser == nil {
		d.mu.Unlock()
		return session.ErrAnonymous
	}
	body := strings.TrimSpace(d.draft)
	if body == "" {
		d.mu.Unlock()
		return ErrEmptyComment
	}
	payload := &models.Comment{
		Content:  body,
		UserID:   d.currentUser.ID,
		PostID:   d.post.ID,
		ParentID: d.replyTo,
	}
	d.mu.Unlock()

	if err := payload.Validate(); err != nil {
		return fmt.Errorf("invalid comment: %v", err)
	}

	gen, err := d.beginMutation()
	if err != nil {
		return err
	}
	defer d.settle(gen)

	if _, err := d.comments.Create(ctx, payload); err != nil {
		d.notifier.Notify("Erro", "Não foi possível enviar o comentário.", LevelDanger)
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if err := d.refreshComments(ctx, gen); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != gen || d.closed {
		return ErrClosed
	}
	d.draft = ""
	d.replyTo = nil
	d.notifier.Notify("Sucesso", "Comentário enviado.", LevelSuccess)
	return nil
}

// EditComment replaces a comment's body with newBody. The comment must
// belong to the current user; the full record is submitted because the
// backend expects a complete replacement. On failure the caller keeps the
// attempted text and can retry.
func (d *PostDetail) EditComment(ctx context.Context, commentID int, newBody string) error {
	newBody = strings.TrimSpace(newBody)
	if newBody == "" {
		return ErrEmptyComment
	}

	d.mu.Lock()
	if d.currentUser == nil {
		d.mu.Unlock()
		return session.ErrAnonymous
	}
	var existing *models.Comment
	for _, c := range d.commentList {
		if c.ID == commentID {
			existing = c
			break
		}
	}
	if existing == nil {
		d.mu.Unlock()
		return ErrUnknownComment
	}
	if existing.UserID != d.currentUser.ID {
		d.mu.Unlock()
		return ErrNotOwner
	}
	payload := &models.Comment{
		ID:       existing.ID,
		Content:  newBody,
		UserID:   existing.UserID,
		PostID:   existing.PostID,
		ParentID: existing.ParentID,
	}
	d.mu.Unlock()

	if err := payload.Validate(); err != nil {
		return fmt.Errorf("invalid comment: %v", err)
	}

	gen, err := d.beginMutation()
	if err != nil {
		return err
	}
	defer d.settle(gen)

	if _, err := d.comments.Update(ctx, payload); err != nil {
		d.notifier.Notify("Erro", "Não foi possível editar o comentário.", LevelDanger)
		return fmt.Errorf("failed to update comment %d: %w", commentID, err)
	}

	if err := d.refreshComments(ctx, gen); err != nil {
		return err
	}
	d.notifier.Notify("Sucesso", "Comentário atualizado.", LevelSuccess)
	return nil
}

// RequestDeleteComment records the intent to delete a comment. Nothing is
// deleted until ConfirmDelete; deletion is irreversible so it is always two
// phase.
func (d *PostDetail) RequestDeleteComment(commentID int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending.active {
		return ErrDeletePending
	}
	if !d.hasCommentLocked(commentID) {
		return ErrUnknownComment
	}
	d.pending = pendingDelete{active: true, commentID: commentID}
	return nil
}

// RequestDeletePost records the intent to delete the post itself.
func (d *PostDetail) RequestDeletePost() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending.active {
		return ErrDeletePending
	}
	d.pending = pendingDelete{active: true, isPost: true}
	return nil
}

// CancelDelete discards the pending delete intent.
func (d *PostDetail) CancelDelete() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = pendingDelete{}
}

// HasPendingDelete reports whether a delete awaits confirmation.
func (d *PostDetail) HasPendingDelete() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending.active
}

// ConfirmDelete executes the pending delete. Deleting the post closes the
// screen. Deleting a comment re-fetches the list; replies of the deleted
// comment are not cascaded client-side and stay in the thread as orphans.
func (d *PostDetail) ConfirmDelete(ctx context.Context) error {
	d.mu.Lock()
	if !d.pending.active {
		d.mu.Unlock()
		return ErrNoPendingDelete
	}
	pending := d.pending
	d.pending = pendingDelete{}
	d.mu.Unlock()

	gen, err := d.beginMutation()
	if err != nil {
		return err
	}

	if pending.isPost {
		if err := d.posts.Delete(ctx, d.postID); err != nil {
			d.settle(gen)
			d.notifier.Notify("Erro", "Não foi possível excluir o alerta.", LevelDanger)
			return fmt.Errorf("failed to delete post %d: %w", d.postID, err)
		}
		d.mu.Lock()
		if d.generation == gen && !d.closed {
			d.closed = true
			d.generation++
			d.state = StateClosed
		}
		d.mu.Unlock()
		d.notifier.Notify("Sucesso", "Alerta excluído.", LevelSuccess)
		return nil
	}

	defer d.settle(gen)
	if err := d.comments.Delete(ctx, pending.commentID); err != nil {
		d.notifier.Notify("Erro", "Não foi possível excluir o comentário.", LevelDanger)
		return fmt.Errorf("failed to delete comment %d: %w", pending.commentID, err)
	}
	if err := d.refreshComments(ctx, gen); err != nil {
		return err
	}
	d.notifier.Notify("Sucesso", "Comentário excluído.", LevelSuccess)
	return nil
}

// refreshComments re-fetches the comment list and derives like statuses for
// ids that were not in the previous view, through the same derivation path
// initialization uses. Statuses of surviving comments are kept as-is.
func (d *PostDetail) refreshComments(ctx context.Context, gen int) error {
	list, err := d.comments.ListByPost(ctx, d.postID)
	if err != nil {
		d.notifier.Notify("Erro", "Não foi possível atualizar os comentários.", LevelDanger)
		return fmt.Errorf("failed to refresh comments: %w", err)
	}

	d.mu.Lock()
	known := d.commentStatus
	user := d.currentUser
	userLikes := d.userLikes
	d.mu.Unlock()

	var added []*models.Comment
	for _, c := range list {
		if _, ok := known[c.ID]; !ok {
			added = append(added, c)
		}
	}
	newStatuses := d.fetchCommentStatuses(ctx, added, user, userLikes)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generation != gen || d.closed {
		return ErrClosed
	}
	d.commentList = list
	live := make(map[int]models.LikeStatus, len(list))
	for _, c := range list {
		if status, ok := newStatuses[c.ID]; ok {
			live[c.ID] = status
		} else if status, ok := d.commentStatus[c.ID]; ok {
			live[c.ID] = status
		}
	}
	d.commentStatus = live
	return nil
}

// ToggleReplies flips the expansion of one top-level comment's replies.
// Expansion is view-local and dies with the screen.
func (d *PostDetail) ToggleReplies(commentID int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.expanded[commentID] {
		delete(d.expanded, commentID)
	} else {
		d.expanded[commentID] = true
	}
}

// Close marks the screen unmounted. Any fetch still in flight will find the
// generation changed and drop its result instead of mutating a view that no
// longer exists.
func (d *PostDetail) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	d.generation++
	d.state = StateClosed
}

func (d *PostDetail) hasCommentLocked(commentID int) bool {
	for _, c := range d.commentList {
		if c.ID == commentID {
			return true
		}
	}
	return false
}
