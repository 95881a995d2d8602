// Package adminapi exposes the dashboard-operator mock API surface over
// HTTP: account lifecycle, project and config management, moderation,
// and the marketing endpoints. Everything past login is gated by the
// account session cookie.
package adminapi

import (
	"net/http"

	"github.com/echoboard/echoboard/internal/app/features/shared/jsonapi"
	"github.com/echoboard/echoboard/internal/app/mock"
	"github.com/echoboard/echoboard/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the admin API against the mock engine.
type Handler struct {
	Srv      *mock.Server
	Sessions *SessionManager
	Log      *zap.Logger
}

// NewHandler constructs an admin API handler.
func NewHandler(srv *mock.Server, sessions *SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Srv: srv, Sessions: sessions, Log: logger}
}

func projectID(r *http.Request) string {
	return chi.URLParam(r, "projectId")
}

func (h *Handler) HandlePlansGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Admin().PlansGet()
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleLegalGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Admin().LegalGet()
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleSupportMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := jsonapi.Decode(r, &req); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	if err := h.Srv.Admin().SupportMessage(req.Content); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleAccountSignup(w http.ResponseWriter, r *http.Request) {
	var signup models.AccountSignup
	if err := jsonapi.Decode(r, &signup); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	account, err := h.Srv.Admin().AccountSignup(signup)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	h.Sessions.SignIn(w, r, account.Email)
	jsonapi.Write(w, http.StatusOK, account)
}

func (h *Handler) HandleAccountLogin(w http.ResponseWriter, r *http.Request) {
	var login models.AccountLogin
	if err := jsonapi.Decode(r, &login); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	account, err := h.Srv.Admin().AccountLogin(login)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	h.Sessions.SignIn(w, r, account.Email)
	jsonapi.Write(w, http.StatusOK, account)
}

func (h *Handler) HandleAccountLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Srv.Admin().AccountLogout(); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	h.Sessions.SignOut(w, r)
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleAccountUpdate(w http.ResponseWriter, r *http.Request) {
	var update models.AccountUpdate
	if err := jsonapi.Decode(r, &update); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	account, err := h.Srv.Admin().AccountUpdate(update)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	// Email may have changed; refresh the cookie.
	h.Sessions.SignIn(w, r, account.Email)
	jsonapi.Write(w, http.StatusOK, account)
}

func (h *Handler) HandleAccountBind(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Admin().AccountBind()
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleProjectCreate(w http.ResponseWriter, r *http.Request) {
	var config models.Config
	if err := jsonapi.Decode(r, &config); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Admin().ProjectCreate(projectID(r), config)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleProjectDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Srv.Admin().ProjectDelete(projectID(r)); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleConfigGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Admin().ConfigGet(projectID(r))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleConfigGetAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Admin().ConfigGetAll()
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleConfigSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Config      models.Config `json:"config"`
		VersionLast string        `json:"version_last,omitempty"`
	}
	if err := jsonapi.Decode(r, &req); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Admin().ConfigSet(projectID(r), req.Config, req.VersionLast)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleIdeaCreate(w http.ResponseWriter, r *http.Request) {
	var create models.IdeaCreate
	if err := jsonapi.Decode(r, &create); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Admin().IdeaCreateAdmin(projectID(r), create)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleIdeaGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Admin().IdeaGetAdmin(projectID(r), chi.URLParam(r, "ideaId"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleIdeaUpdate(w http.ResponseWriter, r *http.Request) {
	var update models.IdeaUpdate
	if err := jsonapi.Decode(r, &update); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Admin().IdeaUpdateAdmin(projectID(r), chi.URLParam(r, "ideaId"), update)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleIdeaDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Srv.Admin().IdeaDeleteAdmin(projectID(r), chi.URLParam(r, "ideaId")); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleIdeaDeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IdeaIDs []string `json:"idea_ids"`
	}
	if err := jsonapi.Decode(r, &req); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	if err := h.Srv.Admin().IdeaDeleteBulkAdmin(projectID(r), req.IdeaIDs); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleIdeaSearch(w http.ResponseWriter, r *http.Request) {
	var search models.IdeaSearch
	if err := jsonapi.Decode(r, &search); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Admin().IdeaSearchAdmin(projectID(r), search, r.URL.Query().Get("cursor"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleCommentDelete(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Admin().CommentDeleteAdmin(projectID(r), chi.URLParam(r, "commentId"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleUserCreate(w http.ResponseWriter, r *http.Request) {
	var create models.UserCreate
	if err := jsonapi.Decode(r, &create); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Admin().UserCreateAdmin(projectID(r), create)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleUserGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Admin().UserGetAdmin(projectID(r), chi.URLParam(r, "userId"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleUserUpdate(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdateAdmin
	if err := jsonapi.Decode(r, &update); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Admin().UserUpdateAdmin(projectID(r), chi.URLParam(r, "userId"), update)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleUserDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Srv.Admin().UserDeleteAdmin(projectID(r), chi.URLParam(r, "userId")); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleUserDeleteBulk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserIDs []string `json:"user_ids"`
	}
	if err := jsonapi.Decode(r, &req); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	if err := h.Srv.Admin().UserDeleteBulkAdmin(projectID(r), req.UserIDs); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleUserSearch(w http.ResponseWriter, r *http.Request) {
	var search models.UserSearchAdmin
	if err := jsonapi.Decode(r, &search); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Admin().UserSearchAdmin(projectID(r), search, r.URL.Query().Get("cursor"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleTransactionSearch(w http.ResponseWriter, r *http.Request) {
	var search models.TransactionSearch
	if err := jsonapi.Decode(r, &search); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Admin().TransactionSearchAdmin(projectID(r), search, r.URL.Query().Get("cursor"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}
