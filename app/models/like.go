package models

import "errors"

// Validate checks that the like targets exactly one of post or comment.
func (l *Like) Validate() error {
	if err := validate.Struct(l); err != nil {
		return err
	}
	if (l.PostID == nil) == (l.CommentID == nil) {
		return errors.New("like must target exactly one of post or comment")
	}
	return nil
}

// TargetsPost reports whether the like is on the given post.
func (l *Like) TargetsPost(postID int) bool {
	return l.PostID != nil && *l.PostID == postID
}

// TargetsComment reports whether the like is on the given comment.
func (l *Like) TargetsComment(commentID int) bool {
	return l.CommentID != nil && *l.CommentID == commentID
}

// LikesPost reports whether the set contains a like on the given post.
// The set is the current user's full like-relation list, so membership is
// exactly the user's isLiked for that post.
func LikesPost(set []*Like, postID int) bool {
	for _, l := range set {
		if l.TargetsPost(postID) {
			return true
		}
	}
	return false
}

// LikesComment reports whether the set contains a like on the given comment.
func LikesComment(set []*Like, commentID int) bool {
	for _, l := range set {
		if l.TargetsComment(commentID) {
			return true
		}
	}
	return false
}
