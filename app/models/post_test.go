package models

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostValidate(t *testing.T) {
	valid := &Post{
		Title:      "Enchente no centro",
		Content:    "Ruas alagadas após chuva forte na região central.",
		UserID:     1,
		CategoryID: 2,
		LocationID: 3,
	}
	assert.NoError(t, valid.Validate())

	tooShortTitle := *valid
	tooShortTitle.Title = "ab"
	assert.Error(t, tooShortTitle.Validate())

	tooShortContent := *valid
	tooShortContent.Content = "curto"
	assert.Error(t, tooShortContent.Validate())

	noCategory := *valid
	noCategory.CategoryID = 0
	assert.Error(t, noCategory.Validate())
}

func TestFilterPosts(t *testing.T) {
	gofakeit.Seed(42)

	var posts []*Post
	for i := 0; i < 20; i++ {
		posts = append(posts, &Post{
			ID:      i + 1,
			Title:   gofakeit.Sentence(4),
			Content: gofakeit.Paragraph(1, 2, 8, " "),
		})
	}
	posts = append(posts,
		&Post{ID: 100, Title: "Enchente no centro", Content: "Ruas alagadas"},
		&Post{ID: 101, Title: "Deslizamento", Content: "Encosta cedeu após a enchente"},
	)

	t.Run("empty query matches everything", func(t *testing.T) {
		assert.Len(t, FilterPosts(posts, ""), len(posts))
		assert.Len(t, FilterPosts(posts, "   "), len(posts))
	})

	t.Run("matches title and content case-insensitively", func(t *testing.T) {
		got := FilterPosts(posts, "ENCHENTE")
		require.Len(t, got, 2)
		assert.Equal(t, 100, got[0].ID)
		assert.Equal(t, 101, got[1].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterPosts(posts, "zzz-nao-existe-zzz"))
	})
}
