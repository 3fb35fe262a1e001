package services

import "coalert/app/models"

// ThreadReply is one reply with its like status.
type ThreadReply struct {
	Comment *models.Comment
	Status  models.LikeStatus
}

// ThreadComment is one top-level comment with its like status, expansion
// flag and direct replies. A reply's own replies are never included.
type ThreadComment struct {
	Comment  *models.Comment
	Status   models.LikeStatus
	Expanded bool
	Replies  []ThreadReply
}

// Snapshot is an immutable view of the screen, safe to render while the
// synchronizer keeps working.
type Snapshot struct {
	State       State
	CurrentUser *models.User
	Post        *models.Post
	PostStatus  models.LikeStatus
	Thread      []ThreadComment
	// Orphans are replies whose parent comment was deleted. They stay
	// visible rather than silently disappearing.
	Orphans       []ThreadReply
	Draft         string
	ReplyTo       *int
	PendingDelete bool
}

// Snapshot partitions the current comment list into the rendered thread and
// returns it together with the rest of the view state. The partition is
// recomputed on every call, so it always reflects the latest list.
func (d *PostDetail) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := Snapshot{
		State:         d.state,
		CurrentUser:   d.currentUser,
		Post:          d.post,
		PostStatus:    d.postStatus,
		Draft:         d.draft,
		ReplyTo:       d.replyTo,
		PendingDelete: d.pending.active,
	}

	for _, c := range models.TopLevel(d.commentList) {
		entry := ThreadComment{
			Comment:  c,
			Status:   d.commentStatus[c.ID],
			Expanded: d.expanded[c.ID],
		}
		for _, r := range models.RepliesOf(d.commentList, c.ID) {
			entry.Replies = append(entry.Replies, ThreadReply{
				Comment: r,
				Status:  d.commentStatus[r.ID],
			})
		}
		snap.Thread = append(snap.Thread, entry)
	}
	for _, o := range models.Orphans(d.commentList) {
		snap.Orphans = append(snap.Orphans, ThreadReply{
			Comment: o,
			Status:  d.commentStatus[o.ID],
		})
	}
	return snap
}
