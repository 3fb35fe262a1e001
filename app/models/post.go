package models

import "strings"

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// MatchesSearch reports whether the post's title or content contains the
// query, case-insensitively. An empty query matches everything.
func (p *Post) MatchesSearch(query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Content), query)
}

// FilterPosts returns the posts matching the search query, preserving order.
func FilterPosts(posts []*Post, query string) []*Post {
	if strings.TrimSpace(query) == "" {
		return posts
	}
	var out []*Post
	for _, p := range posts {
		if p.MatchesSearch(query) {
			out = append(out, p)
		}
	}
	return out
}
