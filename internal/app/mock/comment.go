package mock

import (
	"sort"
	"time"

	"github.com/echoboard/echoboard/internal/app/store/projectstore"
	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"github.com/echoboard/echoboard/internal/app/system/htmlsanitize"
	"github.com/echoboard/echoboard/internal/domain/models"
)

// commentPageSize is the fixed comment listing page; there is no cursor
// continuation for comment threads.
const commentPageSize = 10

// CommentCreate posts a comment under an idea, optionally as a reply.
// The new comment's ancestor path is the parent's path plus the parent
// id. The author receives an implicit upvote on their own comment.
func (s *Server) CommentCreate(projectID, ideaID string, create models.CommentCreate) (models.CommentWithVote, error) {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return fail[models.CommentWithVote](s, err)
	}
	idea := p.FindIdea(ideaID)
	if idea == nil {
		return fail[models.CommentWithVote](s, apierror.NotFound("Idea not found"))
	}

	var parentIDPath []string
	if create.ParentCommentID != "" {
		parent := p.FindComment(create.ParentCommentID)
		if parent == nil {
			return fail[models.CommentWithVote](s, apierror.NotFound("Parent comment not found"))
		}
		parentIDPath = append(append(parentIDPath, parent.ParentIDPath...), create.ParentCommentID)
		parent.ChildCommentCount++
	}

	comment := models.Comment{
		CommentID:       s.store.NextCommentID(),
		IdeaID:          ideaID,
		ParentCommentID: create.ParentCommentID,
		ParentIDPath:    parentIDPath,
		AuthorUserID:    me.UserID,
		AuthorName:      me.Name,
		Content:         htmlsanitize.Sanitize(create.Content),
		Created:         s.now(),
	}
	p.Comments = append(p.Comments, comment)

	idea.CommentCount++
	if create.ParentCommentID == "" {
		idea.ChildCommentCount++
	}

	// Implicit author upvote.
	c := p.FindComment(comment.CommentID)
	vote := p.CommentVoteOrCreate(me.UserID, c.CommentID)
	vote.Vote = models.VoteUpvote
	c.VoteValue = 1

	return respond(s, models.CommentWithVote{Comment: *c, Vote: models.VoteUpvote})
}

// CommentList returns one fixed-size page of an idea's comments,
// ascending by creation time.
//
// ExcludeChildrenCommentIDs prunes already-fetched subtrees: the listed
// ids and all their descendants are skipped, and so is anything whose id
// does not sort after the highest excluded id. Because comment ids are
// zero-padded monotonic counters, the id comparison doubles as a
// created-before threshold.
func (s *Server) CommentList(projectID, ideaID string, search models.CommentSearch) (models.CommentSearchResult, error) {
	p := s.project(projectID)

	var maxExcludedID string
	for _, id := range search.ExcludeChildrenCommentIDs {
		if id > maxExcludedID {
			maxExcludedID = id
		}
	}

	var matched []models.Comment
	for _, c := range p.Comments {
		if c.IdeaID != ideaID {
			continue
		}
		if search.ParentCommentID != "" && !contains(c.ParentIDPath, search.ParentCommentID) {
			continue
		}
		if maxExcludedID != "" && c.CommentID <= maxExcludedID {
			continue
		}
		if inExcludedSubtree(c, search.ExcludeChildrenCommentIDs) {
			continue
		}
		matched = append(matched, c)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Created.Before(matched[j].Created)
	})
	if len(matched) > commentPageSize {
		matched = matched[:commentPageSize]
	}

	results := make([]models.CommentWithVote, 0, len(matched))
	for _, c := range matched {
		results = append(results, models.CommentWithVote{Comment: c, Vote: s.ownCommentVote(p, c.CommentID)})
	}
	return respond(s, models.CommentSearchResult{Results: results})
}

func inExcludedSubtree(c models.Comment, excluded []string) bool {
	for _, id := range excluded {
		if c.CommentID == id || contains(c.ParentIDPath, id) {
			return true
		}
	}
	return false
}

// CommentUpdate replaces a comment's content and stamps it edited.
func (s *Server) CommentUpdate(projectID, commentID string, update models.CommentUpdate) (models.CommentWithVote, error) {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return fail[models.CommentWithVote](s, err)
	}
	comment := p.FindComment(commentID)
	if comment == nil {
		return fail[models.CommentWithVote](s, apierror.NotFound("Comment not found"))
	}
	if comment.AuthorUserID != me.UserID {
		return fail[models.CommentWithVote](s, apierror.Forbidden("Not the author"))
	}

	comment.Content = htmlsanitize.Sanitize(update.Content)
	now := s.now()
	comment.Edited = &now

	return respond(s, models.CommentWithVote{Comment: *comment, Vote: s.ownCommentVote(p, commentID)})
}

// CommentDelete soft-deletes the caller's own comment: content and
// author identity are cleared but the row stays, so replies keep a
// valid ancestor chain.
func (s *Server) CommentDelete(projectID, commentID string) (models.CommentWithVote, error) {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return fail[models.CommentWithVote](s, err)
	}
	comment := p.FindComment(commentID)
	if comment == nil {
		return fail[models.CommentWithVote](s, apierror.NotFound("Comment not found"))
	}
	if comment.AuthorUserID != me.UserID {
		return fail[models.CommentWithVote](s, apierror.Forbidden("Not the author"))
	}

	softDeleteComment(comment, s.now())
	return respond(s, models.CommentWithVote{Comment: *comment, Vote: s.ownCommentVote(p, commentID)})
}

// CommentDeleteAdmin soft-deletes any comment, no ownership check.
func (s *Server) CommentDeleteAdmin(projectID, commentID string) (models.Comment, error) {
	p := s.project(projectID)
	comment := p.FindComment(commentID)
	if comment == nil {
		return fail[models.Comment](s, apierror.NotFound("Comment not found"))
	}

	softDeleteComment(comment, s.now())
	return respond(s, *comment)
}

func softDeleteComment(c *models.Comment, now time.Time) {
	c.Content = ""
	c.AuthorUserID = ""
	c.AuthorName = ""
	c.Edited = &now
}

// ownCommentVote looks up the logged-in user's vote on a comment,
// VoteNone mapped to absent.
func (s *Server) ownCommentVote(p *projectstore.Project, commentID string) models.VoteOption {
	u := p.LoggedInUser()
	if u == nil {
		return ""
	}
	v := p.FindCommentVote(u.UserID, commentID)
	if v == nil || v.Vote == models.VoteNone {
		return ""
	}
	return v.Vote
}
