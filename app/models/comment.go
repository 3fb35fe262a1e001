package models

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// IsReply reports whether the comment is a reply to another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// TopLevel returns the comments with no parent, preserving order.
func TopLevel(comments []*Comment) []*Comment {
	var out []*Comment
	for _, c := range comments {
		if !c.IsReply() {
			out = append(out, c)
		}
	}
	return out
}

// RepliesOf returns the direct replies of the given comment, preserving
// order. Replies of replies are not part of the result; the view only ever
// renders one level.
func RepliesOf(comments []*Comment, parentID int) []*Comment {
	var out []*Comment
	for _, c := range comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out
}

// Orphans returns replies whose parent comment is no longer in the list.
// Deleting a commented-on comment does not cascade, so its replies stay in
// the server's list pointing at a dead parent.
func Orphans(comments []*Comment) []*Comment {
	ids := make(map[int]bool, len(comments))
	for _, c := range comments {
		ids[c.ID] = true
	}
	var out []*Comment
	for _, c := range comments {
		if c.ParentID != nil && !ids[*c.ParentID] {
			out = append(out, c)
		}
	}
	return out
}
