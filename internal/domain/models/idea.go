package models

import "time"

// Idea is a feedback post, the central votable/fundable entity.
//
// The aggregate counters (VoteValue, Funded, ExpressionsValue,
// FundersCount, comment counts) are maintained incrementally by the
// engine and must always equal the fold of the underlying vote and
// comment records. They are never recomputed from scratch.
type Idea struct {
	IdeaID      string   `json:"idea_id"` // slug of title + random suffix
	AuthorUserID string  `json:"author_user_id"`
	AuthorName  string   `json:"author_name,omitempty"`
	Created     time.Time `json:"created"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Response    string   `json:"response,omitempty"`
	CategoryID  string   `json:"category_id"`
	StatusID    string   `json:"status_id,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`

	CommentCount      int64 `json:"comment_count"`
	ChildCommentCount int64 `json:"child_comment_count"`

	VoteValue        int64              `json:"vote_value,omitempty"`
	FundersCount     int64              `json:"funders_count,omitempty"`
	Funded           int64              `json:"funded,omitempty"`
	FundGoal         int64              `json:"fund_goal,omitempty"`
	Expressions      map[string]int64   `json:"expressions,omitempty"`
	ExpressionsValue float64            `json:"expressions_value,omitempty"`
}

// IdeaWithVote is an idea plus the calling user's own vote record.
type IdeaWithVote struct {
	Idea
	Vote IdeaVoteState `json:"vote"`
}

// IdeaUpdate is a partial-update request for an idea. Nil fields are
// left untouched; non-nil fields overwrite, even when empty.
type IdeaUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Response    *string   `json:"response,omitempty"`
	StatusID    *string   `json:"status_id,omitempty"`
	TagIDs      *[]string `json:"tag_ids,omitempty"`
	FundGoal    *int64    `json:"fund_goal,omitempty"`

	SuppressNotifications bool `json:"suppress_notifications,omitempty"`
}

// IdeaCreate is the request payload for creating an idea.
type IdeaCreate struct {
	AuthorUserID string   `json:"author_user_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	CategoryID   string   `json:"category_id"`
	StatusID     string   `json:"status_id,omitempty"`
	TagIDs       []string `json:"tag_ids,omitempty"`
	FundGoal     int64    `json:"fund_goal,omitempty"`
}

// IdeaSearchSort selects the ordering of idea search results.
type IdeaSearchSort string

const (
	SortTrending IdeaSearchSort = "trending"
	SortTop      IdeaSearchSort = "top"
	SortNew      IdeaSearchSort = "new"
)

// IdeaSearch is the filter set for idea search.
type IdeaSearch struct {
	SortBy              IdeaSearchSort `json:"sort_by,omitempty"`
	FilterTagIDs        []string       `json:"filter_tag_ids,omitempty"`
	FilterCategoryIDs   []string       `json:"filter_category_ids,omitempty"`
	FilterStatusIDs     *[]string      `json:"filter_status_ids,omitempty"`
	SearchText          *string        `json:"search_text,omitempty"`
	FundedByMeAndActive bool           `json:"funded_by_me_and_active,omitempty"`
	Limit               int            `json:"limit,omitempty"`
}

// IdeaSearchResult is one page of idea search results. Cursor is empty
// when there are no further pages.
type IdeaSearchResult struct {
	Results []IdeaWithVote `json:"results"`
	Cursor  string         `json:"cursor,omitempty"`
}
