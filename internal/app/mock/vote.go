package mock

import (
	"github.com/echoboard/echoboard/internal/app/store/projectstore"
	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"github.com/echoboard/echoboard/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fundSummaryMax bounds the idea title length quoted in ledger entries.
const fundSummaryMax = 50

// IdeaVoteUpdate runs up to three independent sub-operations (funding
// delta, directional vote, expression change) against the caller's
// single vote record for the idea, creating the record empty if absent.
// The response carries only the pieces that actually ran.
func (s *Server) IdeaVoteUpdate(projectID, ideaID string, update models.IdeaVoteUpdate) (models.IdeaVoteUpdateResult, error) {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return fail[models.IdeaVoteUpdateResult](s, err)
	}
	idea := p.FindIdea(ideaID)
	if idea == nil {
		return fail[models.IdeaVoteUpdateResult](s, apierror.NotFound("Idea not found"))
	}

	// Validate the funding delta before touching anything, so a reject
	// leaves no partial mutation.
	if update.FundDiff != nil {
		if *update.FundDiff == 0 {
			return fail[models.IdeaVoteUpdateResult](s, apierror.InvalidArgument("Cannot fund zero"))
		}
		if p.Balance(me.UserID)-*update.FundDiff < 0 {
			return fail[models.IdeaVoteUpdateResult](s, apierror.Forbidden("Insufficient funds"))
		}
	}

	vote := p.IdeaVoteOrCreate(me.UserID, ideaID)
	var transaction *models.Transaction
	var balance *models.Balance

	if update.FundDiff != nil {
		fundDiff := *update.FundDiff
		newBalance := p.Balance(me.UserID) - fundDiff

		// fundersCount moves by at most one per call: it counts users
		// whose cumulative fund amount is positive, so only a crossing
		// of zero changes it.
		fundersCountDiff := boolToCount(vote.FundAmount+fundDiff > 0) - boolToCount(vote.FundAmount > 0)

		t := models.Transaction{
			TransactionID:   uuid.NewString(),
			UserID:          me.UserID,
			Created:         s.now(),
			Amount:          fundDiff,
			Balance:         newBalance,
			TransactionType: models.TransactionVote,
			TargetID:        ideaID,
			Summary:         `Funding for "` + truncate(idea.Title, fundSummaryMax) + `"`,
		}
		p.Transactions = append(p.Transactions, t)
		vote.FundAmount += fundDiff
		p.Balances[me.UserID] = newBalance
		idea.Funded += fundDiff
		if fundersCountDiff != 0 {
			idea.FundersCount += fundersCountDiff
		}

		transaction = &t
		balance = &models.Balance{Balance: newBalance}
		s.logger.Debug("idea funded",
			zap.String("idea_id", ideaID),
			zap.Int64("fund_diff", fundDiff),
			zap.Int64("balance", newBalance))
	}

	if update.Vote != "" {
		prev := vote.Vote.Value()
		switch update.Vote {
		case models.VoteUpvote:
			vote.Vote = models.VoteUpvote
		case models.VoteDownvote:
			vote.Vote = models.VoteDownvote
		case models.VoteNone:
			vote.Vote = ""
		}
		// Adjust by the delta, never recompute from scratch.
		if diff := vote.Vote.Value() - prev; diff != 0 {
			idea.VoteValue += diff
		}
	}

	if update.Expressions != nil {
		s.applyExpressionUpdate(p, idea, vote, *update.Expressions)
	}

	return respond(s, models.IdeaVoteUpdateResult{
		Vote:        vote.State(),
		Idea:        *idea,
		Transaction: transaction,
		Balance:     balance,
	})
}

// applyExpressionUpdate rewrites the vote's expression set and adjusts
// the idea's per-expression counters and weighted total by exactly the
// elements that changed. Counter entries are dropped once they hit zero.
func (s *Server) applyExpressionUpdate(p *projectstore.Project, idea *models.Idea, vote *models.IdeaVote, update models.ExpressionUpdate) {
	var express *models.Expressing
	if cat := p.Config.Config.FindCategory(idea.CategoryID); cat != nil {
		express = cat.Support.Express
	}

	var toAdd, toRemove []string
	switch update.Action {
	case models.ExpressionSet:
		for _, e := range vote.Expression {
			if e != update.Expression {
				toRemove = append(toRemove, e)
			}
		}
		if !contains(vote.Expression, update.Expression) {
			toAdd = append(toAdd, update.Expression)
		}
		vote.Expression = []string{update.Expression}
	case models.ExpressionUnset:
		toRemove = append(toRemove, vote.Expression...)
		vote.Expression = nil
	case models.ExpressionAdd:
		if !contains(vote.Expression, update.Expression) {
			toAdd = append(toAdd, update.Expression)
			vote.Expression = append(vote.Expression, update.Expression)
		}
	case models.ExpressionRemove:
		if contains(vote.Expression, update.Expression) {
			toRemove = append(toRemove, update.Expression)
			kept := vote.Expression[:0]
			for _, e := range vote.Expression {
				if e != update.Expression {
					kept = append(kept, e)
				}
			}
			vote.Expression = kept
		}
	}

	for _, e := range toAdd {
		idea.ExpressionsValue += express.WeightOf(e)
		if idea.Expressions == nil {
			idea.Expressions = make(map[string]int64)
		}
		idea.Expressions[e]++
	}
	for _, e := range toRemove {
		idea.ExpressionsValue -= express.WeightOf(e)
		if idea.Expressions[e]--; idea.Expressions[e] <= 0 {
			delete(idea.Expressions, e)
		}
	}
}

func truncate(title string, max int) string {
	if len(title) <= max {
		return title
	}
	return title[:max-3] + "..."
}

func boolToCount(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// CommentVoteUpdate applies the up/down/none delta mechanic to a
// comment; comments carry no funding or expressions.
func (s *Server) CommentVoteUpdate(projectID, commentID string, option models.VoteOption) (models.CommentVoteUpdateResult, error) {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return fail[models.CommentVoteUpdateResult](s, err)
	}
	comment := p.FindComment(commentID)
	if comment == nil {
		return fail[models.CommentVoteUpdateResult](s, apierror.NotFound("Comment not found"))
	}

	vote := p.CommentVoteOrCreate(me.UserID, commentID)
	prev := vote.Vote.Value()
	switch option {
	case models.VoteUpvote, models.VoteDownvote, models.VoteNone:
		vote.Vote = option
	}
	if diff := vote.Vote.Value() - prev; diff != 0 {
		comment.VoteValue += diff
	}

	return respond(s, models.CommentVoteUpdateResult{Vote: *vote, Comment: *comment})
}

// IdeaVoteGetOwn breaks the caller's vote records for the given ideas
// into per-concern maps; ideas without a recorded vote, expression, or
// fund amount are absent from the respective map.
func (s *Server) IdeaVoteGetOwn(projectID string, ideaIDs []string) (models.OwnIdeaVotes, error) {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return fail[models.OwnIdeaVotes](s, err)
	}

	own := models.OwnIdeaVotes{
		VotesByIdeaID:      make(map[string]models.VoteOption),
		ExpressionByIdeaID: make(map[string][]string),
		FundAmountByIdeaID: make(map[string]int64),
	}
	for _, v := range p.IdeaVotes {
		if v.VoterUserID != me.UserID || !contains(ideaIDs, v.IdeaID) {
			continue
		}
		if v.Vote != "" {
			own.VotesByIdeaID[v.IdeaID] = v.Vote
		}
		if len(v.Expression) > 0 {
			own.ExpressionByIdeaID[v.IdeaID] = v.Expression
		}
		if v.FundAmount != 0 {
			own.FundAmountByIdeaID[v.IdeaID] = v.FundAmount
		}
	}
	return respond(s, own)
}

// CommentVoteGetOwn maps comment id to the caller's directional vote.
func (s *Server) CommentVoteGetOwn(projectID string, commentIDs []string) (models.OwnCommentVotes, error) {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return fail[models.OwnCommentVotes](s, err)
	}

	own := models.OwnCommentVotes{VotesByCommentID: make(map[string]models.VoteOption)}
	for _, v := range p.CommentVotes {
		if v.VoterUserID != me.UserID || !contains(commentIDs, v.CommentID) {
			continue
		}
		if v.Vote != "" {
			own.VotesByCommentID[v.CommentID] = v.Vote
		}
	}
	return respond(s, own)
}
