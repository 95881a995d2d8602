package models

import "time"

// Comment is one node in an idea's discussion thread.
//
// CommentID is a zero-padded monotonic counter so that lexicographic
// comparison of ids matches creation order. ParentIDPath is the ordered
// ancestor chain from the thread root down to the immediate parent;
// top-level comments carry an empty path.
//
// Deleting a comment nulls Content and the author identity but keeps the
// row, so descendants' ancestry lookups stay valid.
type Comment struct {
	CommentID    string     `json:"comment_id"`
	IdeaID       string     `json:"idea_id"`
	ParentCommentID string  `json:"parent_comment_id,omitempty"`
	ParentIDPath []string   `json:"parent_id_path,omitempty"`
	AuthorUserID string     `json:"author_user_id,omitempty"`
	AuthorName   string     `json:"author_name,omitempty"`
	Content      string     `json:"content,omitempty"`
	Created      time.Time  `json:"created"`
	Edited       *time.Time `json:"edited,omitempty"`

	ChildCommentCount int64 `json:"child_comment_count"`
	VoteValue         int64 `json:"vote_value,omitempty"`
}

// Deleted reports whether the comment has been soft-deleted.
func (c Comment) Deleted() bool {
	return c.AuthorUserID == "" && c.Content == ""
}

// CommentWithVote is a comment plus the calling user's own vote.
type CommentWithVote struct {
	Comment
	Vote VoteOption `json:"vote,omitempty"`
}

// CommentCreate is the request payload for creating a comment.
type CommentCreate struct {
	ParentCommentID string `json:"parent_comment_id,omitempty"`
	Content         string `json:"content"`
}

// CommentUpdate patches a comment's content.
type CommentUpdate struct {
	Content string `json:"content"`
}

// CommentSearch filters a comment listing within one idea.
type CommentSearch struct {
	ParentCommentID          string   `json:"parent_comment_id,omitempty"`
	ExcludeChildrenCommentIDs []string `json:"exclude_children_comment_ids,omitempty"`
}

// CommentSearchResult is one page of comments, ascending by creation
// time. The page size is fixed; there is no cursor continuation.
type CommentSearchResult struct {
	Results []CommentWithVote `json:"results"`
}
