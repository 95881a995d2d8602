// Package projectstore is the multi-tenant in-memory data store behind
// the mock engine. Each project owns its config, users, ideas, comments,
// votes, ledger, and notifications; nothing is shared across projects
// and nothing survives process restart.
package projectstore

import (
	"fmt"

	"github.com/echoboard/echoboard/internal/domain/models"
	"github.com/google/uuid"
)

// firstCommentID seeds the comment-id counter. Ids are zero-padded so
// lexicographic comparison matches numeric order; see NextCommentID.
const firstCommentID = 10000

// Store holds every project keyed by project id. Projects are created
// lazily on first access and removed only by explicit deletion.
//
// The store is not safe for concurrent use; the mock runs handlers on a
// single logical thread and each call is atomic because nothing can
// interleave mid-mutation.
type Store struct {
	projects      map[string]*Project
	nextCommentID int64
}

// Project is one tenant's complete state. Entity lookups are linear
// scans, which is fine at mock scale.
type Project struct {
	ProjectID      string
	Config         models.VersionedConfig
	LoggedInUserID string // mock session; empty when nobody is bound

	Ideas         []models.Idea
	Users         []models.User
	Comments      []models.Comment
	IdeaVotes     []models.IdeaVote
	CommentVotes  []models.CommentVote
	Transactions  []models.Transaction
	Notifications []models.Notification

	// Balances is the authoritative userId → credit mapping; the
	// transaction list is the audit trail. Both move together.
	Balances map[string]int64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		projects:      make(map[string]*Project),
		nextCommentID: firstCommentID,
	}
}

// GetOrCreate returns the project, creating it with a default generated
// config on first access. Repeat calls for an existing id are
// side-effect-free.
func (s *Store) GetOrCreate(projectID string) *Project {
	if p, ok := s.projects[projectID]; ok {
		return p
	}
	p := &Project{
		ProjectID: projectID,
		Config: models.VersionedConfig{
			Config:  DefaultConfig(projectID),
			Version: uuid.NewString(),
		},
		Balances: make(map[string]int64),
	}
	s.projects[projectID] = p
	return p
}

// Get returns the project without creating it.
func (s *Store) Get(projectID string) (*Project, bool) {
	p, ok := s.projects[projectID]
	return p, ok
}

// Delete removes the whole project. A later GetOrCreate starts from a
// fresh empty state; old data is never resurrected.
func (s *Store) Delete(projectID string) {
	delete(s.projects, projectID)
}

// Projects returns every live project. Iteration order is unspecified.
func (s *Store) Projects() []*Project {
	out := make([]*Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	return out
}

// Len returns the number of live projects.
func (s *Store) Len() int { return len(s.projects) }

// NextCommentID mints the next comment id. Ids are monotonic and
// zero-padded to eight digits so that string comparison agrees with
// creation order well past the original 10,000-comment cliff.
func (s *Store) NextCommentID() string {
	id := s.nextCommentID
	s.nextCommentID++
	return fmt.Sprintf("%08d", id)
}
