package mock

import "github.com/echoboard/echoboard/internal/domain/models"

// ClientService is the end-user-facing API surface: everything the
// project's own participants can do. Operations take and return the
// same shapes as the real backend client.
//
// Calls do not take a context: the mock models no timeouts and no
// cancellation. Once a handler is invoked it runs to completion, with
// only the simulated latency between completion and return.
type ClientService interface {
	// Config / binding
	ConfigGetAndUserBind(projectID, ssoToken string) (models.ConfigAndBindResult, error)

	// Ideas
	IdeaCreate(projectID string, create models.IdeaCreate) (models.IdeaWithVote, error)
	IdeaGet(projectID, ideaID string) (models.IdeaWithVote, error)
	IdeaUpdate(projectID, ideaID string, update models.IdeaUpdate) (models.Idea, error)
	IdeaDelete(projectID, ideaID string) error
	IdeaSearch(projectID string, search models.IdeaSearch, cursor string) (models.IdeaSearchResult, error)
	IdeaVoteUpdate(projectID, ideaID string, update models.IdeaVoteUpdate) (models.IdeaVoteUpdateResult, error)
	IdeaVoteGetOwn(projectID string, ideaIDs []string) (models.OwnIdeaVotes, error)

	// Comments
	CommentCreate(projectID, ideaID string, create models.CommentCreate) (models.CommentWithVote, error)
	CommentList(projectID, ideaID string, search models.CommentSearch) (models.CommentSearchResult, error)
	CommentUpdate(projectID, commentID string, update models.CommentUpdate) (models.CommentWithVote, error)
	CommentDelete(projectID, commentID string) (models.CommentWithVote, error)
	CommentVoteUpdate(projectID, commentID string, vote models.VoteOption) (models.CommentVoteUpdateResult, error)
	CommentVoteGetOwn(projectID string, commentIDs []string) (models.OwnCommentVotes, error)

	// Users
	UserCreate(projectID string, create models.UserCreate) (models.User, error)
	UserGet(projectID, userID string) (models.User, error)
	UserUpdate(projectID, userID string, update models.UserUpdate) (models.User, error)
	UserDelete(projectID string) error
	UserLogin(projectID string, login models.UserLogin) (models.User, error)
	UserLogout(projectID string) error
	UserBind(projectID string) (models.UserBindResult, error)
	ForgotPassword(projectID, email string) error

	// Ledger and notifications
	TransactionSearch(projectID string, search models.TransactionSearch, cursor string) (models.TransactionSearchResult, error)
	NotificationSearch(projectID, cursor string) (models.NotificationSearchResult, error)
	NotificationClear(projectID, notificationID string) error
	NotificationClearAll(projectID string) error
}

// AdminService is the dashboard-operator surface. It shares internals
// with ClientService but is capability-scoped: project management,
// config versioning, moderation, and the global account live here.
type AdminService interface {
	// Marketing / static
	PlansGet() (models.PlansResult, error)
	LegalGet() (models.LegalResult, error)
	SupportMessage(content string) error

	// Account (single global operator identity)
	AccountSignup(signup models.AccountSignup) (models.Account, error)
	AccountLogin(login models.AccountLogin) (models.Account, error)
	AccountLogout() error
	AccountUpdate(update models.AccountUpdate) (models.Account, error)
	AccountBind() (models.AccountBindResult, error)

	// Projects and config
	ProjectCreate(projectID string, config models.Config) (models.VersionedConfig, error)
	ProjectDelete(projectID string) error
	ConfigGet(projectID string) (models.VersionedConfig, error)
	ConfigGetAll() ([]models.VersionedConfig, error)
	ConfigSet(projectID string, config models.Config, versionLast string) (models.VersionedConfig, error)

	// Moderation
	IdeaCreateAdmin(projectID string, create models.IdeaCreate) (models.IdeaWithVote, error)
	IdeaGetAdmin(projectID, ideaID string) (models.Idea, error)
	IdeaUpdateAdmin(projectID, ideaID string, update models.IdeaUpdate) (models.Idea, error)
	IdeaDeleteAdmin(projectID, ideaID string) error
	IdeaDeleteBulkAdmin(projectID string, ideaIDs []string) error
	IdeaSearchAdmin(projectID string, search models.IdeaSearch, cursor string) (models.IdeaSearchResult, error)
	CommentDeleteAdmin(projectID, commentID string) (models.Comment, error)

	// Users
	UserCreateAdmin(projectID string, create models.UserCreate) (models.User, error)
	UserGetAdmin(projectID, userID string) (models.User, error)
	UserUpdateAdmin(projectID, userID string, update models.UserUpdateAdmin) (models.User, error)
	UserDeleteAdmin(projectID, userID string) error
	UserDeleteBulkAdmin(projectID string, userIDs []string) error
	UserSearchAdmin(projectID string, search models.UserSearchAdmin, cursor string) (models.UserSearchResult, error)

	// Ledger
	TransactionSearchAdmin(projectID string, search models.TransactionSearch, cursor string) (models.TransactionSearchResult, error)
}

// Client returns the end-user facade.
func (s *Server) Client() ClientService { return s }

// Admin returns the dashboard-operator facade.
func (s *Server) Admin() AdminService { return s }

var (
	_ ClientService = (*Server)(nil)
	_ AdminService  = (*Server)(nil)
)
