package models

// VoteOption is a directional vote state.
type VoteOption string

const (
	VoteUpvote   VoteOption = "upvote"
	VoteDownvote VoteOption = "downvote"
	VoteNone     VoteOption = "none"
)

// Value maps a vote option to its score contribution.
func (v VoteOption) Value() int64 {
	switch v {
	case VoteUpvote:
		return 1
	case VoteDownvote:
		return -1
	}
	return 0
}

// IdeaVote is the single record capturing everything one user has done
// to one idea: directional vote, cumulative funding, and the set of
// applied expressions. At most one record exists per (user, idea).
type IdeaVote struct {
	VoterUserID string     `json:"voter_user_id"`
	IdeaID      string     `json:"idea_id"`
	Vote        VoteOption `json:"vote,omitempty"`
	FundAmount  int64      `json:"fund_amount,omitempty"` // signed accumulator
	Expression  []string   `json:"expression,omitempty"`
}

// IdeaVoteState is the caller-visible portion of an IdeaVote.
type IdeaVoteState struct {
	Vote       VoteOption `json:"vote,omitempty"`
	FundAmount int64      `json:"fund_amount,omitempty"`
	Expression []string   `json:"expression,omitempty"`
}

// State strips the record down to its caller-visible fields.
func (v IdeaVote) State() IdeaVoteState {
	return IdeaVoteState{Vote: v.Vote, FundAmount: v.FundAmount, Expression: v.Expression}
}

// CommentVote is the per-user-per-comment vote record. Comments have no
// funding or expressions.
type CommentVote struct {
	VoterUserID string     `json:"voter_user_id"`
	CommentID   string     `json:"comment_id"`
	Vote        VoteOption `json:"vote,omitempty"`
}

// ExpressionAction selects how an expression update is applied.
type ExpressionAction string

const (
	ExpressionSet    ExpressionAction = "set"    // replace the whole set with one element
	ExpressionUnset  ExpressionAction = "unset"  // clear all
	ExpressionAdd    ExpressionAction = "add"    // add one if absent
	ExpressionRemove ExpressionAction = "remove" // remove one if present
)

// ExpressionUpdate is the expression portion of an idea vote update.
type ExpressionUpdate struct {
	Action     ExpressionAction `json:"action"`
	Expression string           `json:"expression,omitempty"`
}

// IdeaVoteUpdate carries up to three independent sub-operations; each
// runs only when its field is set.
type IdeaVoteUpdate struct {
	FundDiff    *int64            `json:"fund_diff,omitempty"`
	Vote        VoteOption        `json:"vote,omitempty"`
	Expressions *ExpressionUpdate `json:"expressions,omitempty"`
}

// IdeaVoteUpdateResult echoes the updated records. Transaction and
// Balance are present only when the funding sub-operation ran.
type IdeaVoteUpdateResult struct {
	Vote        IdeaVoteState `json:"vote"`
	Idea        Idea          `json:"idea"`
	Transaction *Transaction  `json:"transaction,omitempty"`
	Balance     *Balance      `json:"balance,omitempty"`
}

// CommentVoteUpdateResult echoes the updated comment and vote.
type CommentVoteUpdateResult struct {
	Vote    CommentVote `json:"vote"`
	Comment Comment     `json:"comment"`
}

// OwnIdeaVotes breaks a user's idea votes out into per-concern maps,
// keyed by idea id. Only ideas with a non-zero entry appear.
type OwnIdeaVotes struct {
	VotesByIdeaID       map[string]VoteOption `json:"votes_by_idea_id"`
	ExpressionByIdeaID  map[string][]string   `json:"expression_by_idea_id"`
	FundAmountByIdeaID  map[string]int64      `json:"fund_amount_by_idea_id"`
}

// OwnCommentVotes maps comment id to the user's directional vote.
type OwnCommentVotes struct {
	VotesByCommentID map[string]VoteOption `json:"votes_by_comment_id"`
}
