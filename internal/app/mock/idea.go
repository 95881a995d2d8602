package mock

import (
	"sort"
	"strings"

	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"github.com/echoboard/echoboard/internal/app/system/htmlsanitize"
	"github.com/echoboard/echoboard/internal/app/system/paging"
	"github.com/echoboard/echoboard/internal/app/system/scoring"
	"github.com/echoboard/echoboard/internal/app/system/slug"
	"github.com/echoboard/echoboard/internal/app/store/projectstore"
	"github.com/echoboard/echoboard/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdeaCreate is the client-surface create: the idea always enters the
// category's workflow at its entry status, regardless of what the
// caller supplied.
func (s *Server) IdeaCreate(projectID string, create models.IdeaCreate) (models.IdeaWithVote, error) {
	if cat := s.project(projectID).Config.Config.FindCategory(create.CategoryID); cat != nil {
		create.StatusID = cat.Workflow.EntryStatus
	}
	return s.IdeaCreateAdmin(projectID, create)
}

// IdeaCreateAdmin creates an idea. The author must already exist. The
// id is a URL-safe slug of the title plus a random suffix; the author
// is seeded with an implicit upvote, so every idea starts at vote
// value 1.
func (s *Server) IdeaCreateAdmin(projectID string, create models.IdeaCreate) (models.IdeaWithVote, error) {
	p := s.project(projectID)
	author := p.FindUser(create.AuthorUserID)
	if author == nil {
		return fail[models.IdeaWithVote](s, apierror.NotFound("Author of idea not found"))
	}

	idea := models.Idea{
		IdeaID:       slug.Make(create.Title + "-" + uuid.NewString()[:5]),
		AuthorUserID: author.UserID,
		AuthorName:   author.Name,
		Created:      s.now(),
		Title:        create.Title,
		Description:  htmlsanitize.Sanitize(create.Description),
		CategoryID:   create.CategoryID,
		StatusID:     create.StatusID,
		TagIDs:       create.TagIDs,
		FundGoal:     create.FundGoal,
		VoteValue:    1,
	}
	if idea.StatusID == "" {
		if cat := p.Config.Config.FindCategory(create.CategoryID); cat != nil {
			idea.StatusID = cat.Workflow.EntryStatus
		}
	}
	p.Ideas = append(p.Ideas, idea)
	p.IdeaVotes = append(p.IdeaVotes, models.IdeaVote{
		VoterUserID: author.UserID,
		IdeaID:      idea.IdeaID,
		Vote:        models.VoteUpvote,
	})

	s.logger.Debug("idea created",
		zap.String("project_id", projectID),
		zap.String("idea_id", idea.IdeaID))
	return respond(s, models.IdeaWithVote{
		Idea: idea,
		Vote: models.IdeaVoteState{Vote: models.VoteUpvote},
	})
}

// IdeaGet returns the idea with the calling user's own vote attached.
func (s *Server) IdeaGet(projectID, ideaID string) (models.IdeaWithVote, error) {
	p := s.project(projectID)
	idea := p.FindIdea(ideaID)
	if idea == nil {
		return fail[models.IdeaWithVote](s, apierror.NotFound("Idea not found"))
	}
	return respond(s, models.IdeaWithVote{Idea: *idea, Vote: s.ownVoteState(p, ideaID)})
}

// IdeaGetAdmin returns the bare idea.
func (s *Server) IdeaGetAdmin(projectID, ideaID string) (models.Idea, error) {
	idea := s.project(projectID).FindIdea(ideaID)
	if idea == nil {
		return fail[models.Idea](s, apierror.NotFound("Idea not found"))
	}
	return respond(s, *idea)
}

// IdeaUpdate is the client-surface partial update.
func (s *Server) IdeaUpdate(projectID, ideaID string, update models.IdeaUpdate) (models.Idea, error) {
	return s.IdeaUpdateAdmin(projectID, ideaID, update)
}

// IdeaUpdateAdmin patches only the fields present in the update; absent
// fields are untouched. A status change notifies the idea's author
// unless suppressed.
func (s *Server) IdeaUpdateAdmin(projectID, ideaID string, update models.IdeaUpdate) (models.Idea, error) {
	p := s.project(projectID)
	idea := p.FindIdea(ideaID)
	if idea == nil {
		return fail[models.Idea](s, apierror.NotFound("Idea not found"))
	}

	statusChanged := false
	if update.Title != nil {
		idea.Title = *update.Title
	}
	if update.Description != nil {
		idea.Description = htmlsanitize.Sanitize(*update.Description)
	}
	if update.Response != nil {
		idea.Response = *update.Response
	}
	if update.StatusID != nil {
		statusChanged = idea.StatusID != *update.StatusID
		idea.StatusID = *update.StatusID
	}
	if update.TagIDs != nil {
		idea.TagIDs = *update.TagIDs
	}
	if update.FundGoal != nil {
		idea.FundGoal = *update.FundGoal
	}

	if statusChanged && !update.SuppressNotifications {
		statusName := idea.StatusID
		if cat := p.Config.Config.FindCategory(idea.CategoryID); cat != nil {
			if st := cat.FindStatus(idea.StatusID); st != nil {
				statusName = st.Name
			}
		}
		s.addNotification(p, idea.AuthorUserID, "Your post "+idea.Title+" changed status to "+statusName, idea.IdeaID, "")
	}
	return respond(s, *idea)
}

// IdeaDelete is deliberately unfinished in the mock.
func (s *Server) IdeaDelete(projectID, ideaID string) error {
	return s.failVoid(apierror.NotImplemented("ideaDelete"))
}

// IdeaDeleteAdmin is deliberately unfinished in the mock.
func (s *Server) IdeaDeleteAdmin(projectID, ideaID string) error {
	return s.failVoid(apierror.NotImplemented("ideaDeleteAdmin"))
}

// IdeaDeleteBulkAdmin is deliberately unfinished in the mock.
func (s *Server) IdeaDeleteBulkAdmin(projectID string, ideaIDs []string) error {
	return s.failVoid(apierror.NotImplemented("ideaDeleteBulkAdmin"))
}

// IdeaSearch filters, sorts, and paginates the project's ideas. Ties
// under a sort keep the underlying collection's stable order.
func (s *Server) IdeaSearch(projectID string, search models.IdeaSearch, cursor string) (models.IdeaSearchResult, error) {
	p := s.project(projectID)

	candidates := p.Ideas
	if search.FundedByMeAndActive {
		me, err := s.loggedInUser(projectID)
		if err != nil {
			return fail[models.IdeaSearchResult](s, err)
		}
		candidates = nil
		for _, v := range p.IdeaVotes {
			if v.VoterUserID == me.UserID && v.FundAmount > 0 {
				if idea := p.FindIdea(v.IdeaID); idea != nil {
					candidates = append(candidates, *idea)
				}
			}
		}
	}

	var matched []models.Idea
	for _, idea := range candidates {
		if !matchIdea(p, idea, search) {
			continue
		}
		matched = append(matched, idea)
	}
	sortIdeas(matched, search.SortBy)

	withVotes := make([]models.IdeaWithVote, len(matched))
	for i, idea := range matched {
		withVotes[i] = models.IdeaWithVote{Idea: idea, Vote: s.ownVoteState(p, idea.IdeaID)}
	}

	page := paging.Cut(withVotes, search.Limit, cursor)
	return respond(s, models.IdeaSearchResult{Results: page.Results, Cursor: page.Cursor})
}

// IdeaSearchAdmin runs the same query engine as the client search.
func (s *Server) IdeaSearchAdmin(projectID string, search models.IdeaSearch, cursor string) (models.IdeaSearchResult, error) {
	return s.IdeaSearch(projectID, search, cursor)
}

func matchIdea(p *projectstore.Project, idea models.Idea, search models.IdeaSearch) bool {
	if search.FundedByMeAndActive && idea.StatusID != "" {
		if cat := p.Config.Config.FindCategory(idea.CategoryID); cat != nil {
			if st := cat.FindStatus(idea.StatusID); st != nil && st.DisableFunding {
				return false
			}
		}
	}
	if len(search.FilterTagIDs) > 0 {
		any := false
		for _, tagID := range search.FilterTagIDs {
			for _, have := range idea.TagIDs {
				if have == tagID {
					any = true
				}
			}
		}
		if !any {
			return false
		}
	}
	if len(search.FilterCategoryIDs) > 0 && !contains(search.FilterCategoryIDs, idea.CategoryID) {
		return false
	}
	if search.FilterStatusIDs != nil && len(*search.FilterStatusIDs) > 0 {
		if idea.StatusID == "" || !contains(*search.FilterStatusIDs, idea.StatusID) {
			return false
		}
	}
	if search.SearchText != nil {
		// Case-sensitive plain substring match, as the real backend's
		// simple search behaves.
		if !strings.Contains(idea.Title, *search.SearchText) &&
			!strings.Contains(idea.Description, *search.SearchText) {
			return false
		}
	}
	return true
}

func sortIdeas(ideas []models.Idea, sortBy models.IdeaSearchSort) {
	switch sortBy {
	case models.SortNew:
		sort.SliceStable(ideas, func(i, j int) bool {
			return ideas[i].Created.After(ideas[j].Created)
		})
	case models.SortTop:
		sort.SliceStable(ideas, func(i, j int) bool {
			return scoring.Score(ideas[i]) > scoring.Score(ideas[j])
		})
	default: // trending
		sort.SliceStable(ideas, func(i, j int) bool {
			return scoring.TrendingScore(ideas[i]) > scoring.TrendingScore(ideas[j])
		})
	}
}

// ownVoteState returns the logged-in user's vote on the idea, or the
// zero state when nobody is logged in or no record exists.
func (s *Server) ownVoteState(p *projectstore.Project, ideaID string) models.IdeaVoteState {
	me := p.LoggedInUser()
	if me == nil {
		return models.IdeaVoteState{}
	}
	if v := p.FindIdeaVote(me.UserID, ideaID); v != nil {
		return v.State()
	}
	return models.IdeaVoteState{}
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
