package cli

import (
	"fmt"
	"time"

	"coalert/app/format"
	"coalert/app/models"
	"coalert/app/services"
)

func heart(liked bool) string {
	if liked {
		return "♥"
	}
	return "♡"
}

func (a *App) renderFeed(posts []*models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "Nenhum alerta encontrado.")
		return
	}
	now := a.now()
	for _, p := range posts {
		author := "?"
		if p.User != nil {
			author = p.User.Name
		}
		place := ""
		if p.Location != nil {
			place = fmt.Sprintf("  %s, %s", p.Location.City, p.Location.State)
		}
		fmt.Fprintf(a.out, "[%d] %s — %s (%s)%s\n", p.ID, p.Title, author, format.FormatarData(now, p.SentAt), place)
		fmt.Fprintf(a.out, "    %s\n", p.Content)
		fmt.Fprintf(a.out, "    %d comentários, %d curtidas\n", len(p.Comments), p.Likes)
	}
}

func (a *App) renderDetail(snap services.Snapshot) {
	if snap.Post == nil {
		return
	}
	now := a.now()
	p := snap.Post

	fmt.Fprintf(a.out, "%s\n", p.Title)
	if p.Category != nil {
		fmt.Fprintf(a.out, "Categoria: %s\n", p.Category.Title)
	}
	if p.Location != nil {
		fmt.Fprintf(a.out, "Localização: %s, %s\n", p.Location.City, p.Location.State)
	}
	if p.User != nil {
		fmt.Fprintf(a.out, "Por %s, %s\n", p.User.Name, format.FormatarData(now, p.SentAt))
	}
	fmt.Fprintf(a.out, "\n%s\n\n", p.Content)
	fmt.Fprintf(a.out, "%s %d curtidas\n\n", heart(snap.PostStatus.IsLiked), snap.PostStatus.TotalLikes)

	if len(snap.Thread) == 0 && len(snap.Orphans) == 0 {
		fmt.Fprintln(a.out, "Nenhum comentário.")
		return
	}
	for _, entry := range snap.Thread {
		a.renderComment(entry.Comment, entry.Status, now, "")
		if len(entry.Replies) > 0 && !entry.Expanded {
			fmt.Fprintf(a.out, "    … %d resposta(s)\n", len(entry.Replies))
			continue
		}
		for _, reply := range entry.Replies {
			a.renderComment(reply.Comment, reply.Status, now, "    ")
		}
	}
	for _, orphan := range snap.Orphans {
		// Replies whose parent was deleted stay visible.
		a.renderComment(orphan.Comment, orphan.Status, now, "    ")
	}
}

func (a *App) renderComment(c *models.Comment, status models.LikeStatus, now time.Time, indent string) {
	author := fmt.Sprintf("usuário %d", c.UserID)
	if c.User != nil {
		author = c.User.Name
	}
	fmt.Fprintf(a.out, "%s[%d] %s (%s): %s\n", indent, c.ID, author, format.FormatarData(now, c.CreatedAt), c.Content)
	fmt.Fprintf(a.out, "%s    %s %d\n", indent, heart(status.IsLiked), status.TotalLikes)
}
