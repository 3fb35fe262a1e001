package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coalert/app/models"
)

// newFakeServer stands in for the Co-Alert API with a handful of fixtures.
func newFakeServer(t *testing.T) (*Client, *mux.Router) {
	router := mux.NewRouter()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second), router
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestPostServiceGetByID(t *testing.T) {
	client, router := newFakeServer(t)
	router.HandleFunc("/postagem/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(mux.Vars(r)["id"])
		if id != 7 {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, &models.Post{
			ID:         7,
			Title:      "Enchente no centro",
			Content:    "Ruas alagadas após chuva forte.",
			UserID:     1,
			CategoryID: 2,
			LocationID: 3,
			Likes:      5,
		})
	}).Methods("GET")

	posts := NewPostService(client)

	post, err := posts.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, post.ID)
	assert.Equal(t, "Enchente no centro", post.Title)
	assert.Equal(t, 5, post.Likes)

	_, err = posts.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostServiceDelete(t *testing.T) {
	client, router := newFakeServer(t)
	deleted := false
	router.HandleFunc("/postagem/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	}).Methods("DELETE")

	require.NoError(t, NewPostService(client).Delete(context.Background(), 7))
	assert.True(t, deleted)
}

func TestCommentServiceListByPost(t *testing.T) {
	client, router := newFakeServer(t)
	parent := 1
	router.HandleFunc("/comentario/postagem/{postId:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []*models.Comment{
			{ID: 1, Content: "first", UserID: 1, PostID: 7},
			{ID: 2, Content: "reply", UserID: 2, PostID: 7, ParentID: &parent},
		})
	}).Methods("GET")

	comments, err := NewCommentService(client).ListByPost(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Nil(t, comments[0].ParentID)
	require.NotNil(t, comments[1].ParentID)
	assert.Equal(t, 1, *comments[1].ParentID)
}

func TestCommentServiceCreate(t *testing.T) {
	client, router := newFakeServer(t)
	var received models.Comment
	router.HandleFunc("/comentario", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		received.ID = 10
		received.CreatedAt = time.Now()
		writeJSON(w, &received)
	}).Methods("POST")

	created, err := NewCommentService(client).Create(context.Background(), &models.Comment{
		Content: "novo comentário",
		UserID:  1,
		PostID:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
	assert.Equal(t, "novo comentário", received.Content)
	assert.Equal(t, 7, received.PostID)
}

func TestLikeServiceToggle(t *testing.T) {
	client, router := newFakeServer(t)
	var received models.Like
	router.HandleFunc("/like/toggle", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeJSON(w, &models.LikeStatus{TotalLikes: 6, IsLiked: true})
	}).Methods("POST")

	likes := NewLikeService(client)
	postID := 7

	status, err := likes.Toggle(context.Background(), &models.Like{UserID: 1, PostID: &postID})
	require.NoError(t, err)
	assert.Equal(t, 6, status.TotalLikes)
	assert.True(t, status.IsLiked)
	require.NotNil(t, received.PostID)
	assert.Equal(t, 7, *received.PostID)
	assert.Nil(t, received.CommentID)
}

func TestLikeServiceToggleRejectsInvalidTarget(t *testing.T) {
	client, _ := newFakeServer(t)
	likes := NewLikeService(client)

	// Both targets set never reaches the network.
	postID, commentID := 7, 9
	_, err := likes.Toggle(context.Background(), &models.Like{
		UserID:    1,
		PostID:    &postID,
		CommentID: &commentID,
	})
	assert.Error(t, err)
}

func TestLikeServiceStatusQueries(t *testing.T) {
	client, router := newFakeServer(t)
	router.HandleFunc("/like/postagem/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("usuarioId"))
		writeJSON(w, &models.LikeStatus{TotalLikes: 4, IsLiked: true})
	}).Methods("GET")
	router.HandleFunc("/like/comentario/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, &models.LikeStatus{TotalLikes: 1, IsLiked: false})
	}).Methods("GET")

	likes := NewLikeService(client)

	status, err := likes.PostStatus(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, status.TotalLikes)

	status, err = likes.CommentStatus(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalLikes)
	assert.False(t, status.IsLiked)
}

func TestUserServiceAuthenticate(t *testing.T) {
	client, router := newFakeServer(t)
	router.HandleFunc("/usuario/autenticar", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Email != "ana@example.com" || creds.Password != "s3cret" {
			http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
			return
		}
		writeJSON(w, &models.User{ID: 42, Name: "Ana", Email: creds.Email})
	}).Methods("POST")

	users := NewUserService(client)

	user, err := users.Authenticate(context.Background(), models.Credentials{
		Email:    "ana@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, user.ID)

	_, err = users.Authenticate(context.Background(), models.Credentials{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Message, "credenciais inválidas")
}

func TestClientEmptySuccessBody(t *testing.T) {
	client, router := newFakeServer(t)
	router.HandleFunc("/categoria-desastre", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	categories, err := NewCategoryService(client).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestClientContextCancellation(t *testing.T) {
	client, router := newFakeServer(t)
	router.HandleFunc("/postagem", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}).Methods("GET")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewPostService(client).List(ctx)
	assert.Error(t, err)
}
