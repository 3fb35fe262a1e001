package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User is a Co-Alert account. The client reads users but never mutates them.
type User struct {
	ID        int       `json:"idUsuario,omitempty" validate:"gte=0"`
	Name      string    `json:"nmUsuario" validate:"required,min=2,max=100"`
	Email     string    `json:"nmEmail" validate:"required,email"`
	Password  string    `json:"nmSenha,omitempty" validate:"-"`
	CreatedAt time.Time `json:"dtCriacao,omitempty" validate:"-"`
}

// Credentials is the payload for /usuario/autenticar. The server expects the
// password under nrSenha, not nmSenha; that asymmetry is part of the contract.
type Credentials struct {
	Email    string `json:"nmEmail" validate:"required,email"`
	Password string `json:"nrSenha" validate:"required"`
}

// Category is a disaster category used to classify posts.
type Category struct {
	ID    int    `json:"idCategoriaDesastre,omitempty" validate:"gte=0"`
	Title string `json:"nmTitulo" validate:"required,min=2,max=100"`
	Type  string `json:"nmTipo" validate:"required,min=2,max=50"`
}

// Location is a place a post refers to.
type Location struct {
	ID    int    `json:"idLocalizacao,omitempty" validate:"gte=0"`
	City  string `json:"nmCidade" validate:"required,min=2,max=100"`
	State string `json:"nmEstado" validate:"required,min=2,max=100"`
	CEP   string `json:"nrCep,omitempty" validate:"-"`
}

// Post is a disaster-alert posting, the central content unit.
type Post struct {
	ID         int        `json:"idPostagem,omitempty" validate:"gte=0"`
	Title      string     `json:"nmTitulo" validate:"required,min=3,max=100"`
	Content    string     `json:"nmConteudo" validate:"required,min=10"`
	SentAt     time.Time  `json:"dtEnvio,omitempty" validate:"-"`
	UserID     int        `json:"usuarioId" validate:"required,gt=0"`
	CategoryID int        `json:"categoriaDesastreId" validate:"required,gt=0"`
	LocationID int        `json:"localizacaoId" validate:"required,gt=0"`
	Likes      int        `json:"nrLikes,omitempty" validate:"-"`
	User       *User      `json:"usuario,omitempty" validate:"-"`
	Category   *Category  `json:"categoriaDesastre,omitempty" validate:"-"`
	Location   *Location  `json:"localizacao,omitempty" validate:"-"`
	Comments   []*Comment `json:"comentarios,omitempty" validate:"-"`
}

// Comment is a threaded response to a post. A comment whose ParentID is set
// is a reply; replies never nest further than one level in the view, even
// though the data shape would permit deeper chains.
type Comment struct {
	ID        int       `json:"idComentario,omitempty" validate:"gte=0"`
	Content   string    `json:"nmConteudo" validate:"required,min=1,max=500"`
	UserID    int       `json:"idUsuario" validate:"required,gt=0"`
	PostID    int       `json:"idPostagem" validate:"required,gt=0"`
	ParentID  *int      `json:"comentarioPaiId,omitempty" validate:"-"`
	CreatedAt time.Time `json:"dtCriacao,omitempty" validate:"-"`
	User      *User     `json:"usuario,omitempty" validate:"-"`
}

// Like is a user-target favorite relation. Exactly one of PostID/CommentID
// is set; the server keeps at most one Like per (user, target) pair.
type Like struct {
	ID        int       `json:"idLike,omitempty" validate:"gte=0"`
	UserID    int       `json:"usuarioId" validate:"required,gt=0"`
	PostID    *int      `json:"postagemId,omitempty" validate:"-"`
	CommentID *int      `json:"comentarioId,omitempty" validate:"-"`
	CreatedAt time.Time `json:"dtCriacao,omitempty" validate:"-"`
}

// LikeStatus is the derived, never-persisted view of a target for the
// current user. /like/toggle returns one of these as its response body.
type LikeStatus struct {
	TotalLikes int  `json:"totalLikes"`
	IsLiked    bool `json:"isLiked"`
}
