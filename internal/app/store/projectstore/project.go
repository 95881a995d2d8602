package projectstore

import "github.com/echoboard/echoboard/internal/domain/models"

// The Find* helpers return pointers into the project's slices so
// handlers mutate records in place. Detachment from caller-held copies
// happens at the response boundary, where every return value is
// deep-copied; nothing here needs defensive cloning.

// FindIdea returns the idea with the given id, or nil.
func (p *Project) FindIdea(ideaID string) *models.Idea {
	for i := range p.Ideas {
		if p.Ideas[i].IdeaID == ideaID {
			return &p.Ideas[i]
		}
	}
	return nil
}

// FindUser returns the user with the given id, or nil.
func (p *Project) FindUser(userID string) *models.User {
	for i := range p.Users {
		if p.Users[i].UserID == userID {
			return &p.Users[i]
		}
	}
	return nil
}

// FindUserByEmail returns the user with the given email, or nil.
func (p *Project) FindUserByEmail(email string) *models.User {
	if email == "" {
		return nil
	}
	for i := range p.Users {
		if p.Users[i].Email == email {
			return &p.Users[i]
		}
	}
	return nil
}

// RemoveUser deletes the user record. It reports whether a record was
// removed.
func (p *Project) RemoveUser(userID string) bool {
	for i := range p.Users {
		if p.Users[i].UserID == userID {
			p.Users = append(p.Users[:i], p.Users[i+1:]...)
			return true
		}
	}
	return false
}

// FindComment returns the comment with the given id, or nil.
func (p *Project) FindComment(commentID string) *models.Comment {
	for i := range p.Comments {
		if p.Comments[i].CommentID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}

// FindIdeaVote returns the (voter, idea) vote record, or nil.
func (p *Project) FindIdeaVote(voterUserID, ideaID string) *models.IdeaVote {
	for i := range p.IdeaVotes {
		if p.IdeaVotes[i].VoterUserID == voterUserID && p.IdeaVotes[i].IdeaID == ideaID {
			return &p.IdeaVotes[i]
		}
	}
	return nil
}

// IdeaVoteOrCreate returns the (voter, idea) vote record, creating an
// empty one when none exists yet.
func (p *Project) IdeaVoteOrCreate(voterUserID, ideaID string) *models.IdeaVote {
	if v := p.FindIdeaVote(voterUserID, ideaID); v != nil {
		return v
	}
	p.IdeaVotes = append(p.IdeaVotes, models.IdeaVote{VoterUserID: voterUserID, IdeaID: ideaID})
	return &p.IdeaVotes[len(p.IdeaVotes)-1]
}

// FindCommentVote returns the (voter, comment) vote record, or nil.
func (p *Project) FindCommentVote(voterUserID, commentID string) *models.CommentVote {
	for i := range p.CommentVotes {
		if p.CommentVotes[i].VoterUserID == voterUserID && p.CommentVotes[i].CommentID == commentID {
			return &p.CommentVotes[i]
		}
	}
	return nil
}

// CommentVoteOrCreate returns the (voter, comment) vote record, creating
// an empty one when none exists yet.
func (p *Project) CommentVoteOrCreate(voterUserID, commentID string) *models.CommentVote {
	if v := p.FindCommentVote(voterUserID, commentID); v != nil {
		return v
	}
	p.CommentVotes = append(p.CommentVotes, models.CommentVote{VoterUserID: voterUserID, CommentID: commentID})
	return &p.CommentVotes[len(p.CommentVotes)-1]
}

// LoggedInUser returns the project's bound user, or nil.
func (p *Project) LoggedInUser() *models.User {
	if p.LoggedInUserID == "" {
		return nil
	}
	return p.FindUser(p.LoggedInUserID)
}

// Balance returns the user's current credit balance.
func (p *Project) Balance(userID string) int64 {
	return p.Balances[userID]
}
