// Package clientapi exposes the end-user mock API surface over HTTP.
// Every route is scoped to a project id; responses and error bodies
// match the wire contract the frontend client speaks against the real
// backend.
package clientapi

import (
	"net/http"

	"github.com/echoboard/echoboard/internal/app/features/shared/jsonapi"
	"github.com/echoboard/echoboard/internal/app/mock"
	"github.com/echoboard/echoboard/internal/app/system/ratelimit"
	"github.com/echoboard/echoboard/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the client API against the mock engine.
type Handler struct {
	Srv     *mock.Server
	Limiter *ratelimit.Limiter
	Log     *zap.Logger
}

// NewHandler constructs a client API handler.
func NewHandler(srv *mock.Server, limiter *ratelimit.Limiter, logger *zap.Logger) *Handler {
	return &Handler{Srv: srv, Limiter: limiter, Log: logger}
}

func projectID(r *http.Request) string {
	return chi.URLParam(r, "projectId")
}

// limit guards a mutating endpoint; on a tripped window it writes the
// 429 with the challenge header and reports false.
func (h *Handler) limit(w http.ResponseWriter, r *http.Request) bool {
	if err := h.Limiter.Check(ratelimit.ClientIP(r)); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return false
	}
	return true
}

func (h *Handler) HandleBind(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SSOToken string `json:"sso_token,omitempty"`
	}
	if err := jsonapi.Decode(r, &req); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().ConfigGetAndUserBind(projectID(r), req.SSOToken)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleIdeaCreate(w http.ResponseWriter, r *http.Request) {
	if !h.limit(w, r) {
		return
	}
	var create models.IdeaCreate
	if err := jsonapi.Decode(r, &create); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().IdeaCreate(projectID(r), create)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleIdeaGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Client().IdeaGet(projectID(r), chi.URLParam(r, "ideaId"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleIdeaUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.limit(w, r) {
		return
	}
	var update models.IdeaUpdate
	if err := jsonapi.Decode(r, &update); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().IdeaUpdate(projectID(r), chi.URLParam(r, "ideaId"), update)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleIdeaDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Srv.Client().IdeaDelete(projectID(r), chi.URLParam(r, "ideaId")); err != nil {
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
	res, err := h.Srv.Client().IdeaSearch(projectID(r), search, r.URL.Query().Get("cursor"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleIdeaVoteUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.limit(w, r) {
		return
	}
	var update models.IdeaVoteUpdate
	if err := jsonapi.Decode(r, &update); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().IdeaVoteUpdate(projectID(r), chi.URLParam(r, "ideaId"), update)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleIdeaVoteGetOwn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IdeaIDs []string `json:"idea_ids"`
	}
	if err := jsonapi.Decode(r, &req); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().IdeaVoteGetOwn(projectID(r), req.IdeaIDs)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleCommentCreate(w http.ResponseWriter, r *http.Request) {
	if !h.limit(w, r) {
		return
	}
	var create models.CommentCreate
	if err := jsonapi.Decode(r, &create); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().CommentCreate(projectID(r), chi.URLParam(r, "ideaId"), create)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleCommentList(w http.ResponseWriter, r *http.Request) {
	var search models.CommentSearch
	if err := jsonapi.Decode(r, &search); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().CommentList(projectID(r), chi.URLParam(r, "ideaId"), search)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleCommentUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.limit(w, r) {
		return
	}
	var update models.CommentUpdate
	if err := jsonapi.Decode(r, &update); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().CommentUpdate(projectID(r), chi.URLParam(r, "commentId"), update)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleCommentDelete(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Client().CommentDelete(projectID(r), chi.URLParam(r, "commentId"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleCommentVoteUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.limit(w, r) {
		return
	}
	var req struct {
		Vote models.VoteOption `json:"vote"`
	}
	if err := jsonapi.Decode(r, &req); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().CommentVoteUpdate(projectID(r), chi.URLParam(r, "commentId"), req.Vote)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleCommentVoteGetOwn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CommentIDs []string `json:"comment_ids"`
	}
	if err := jsonapi.Decode(r, &req); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().CommentVoteGetOwn(projectID(r), req.CommentIDs)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleUserCreate(w http.ResponseWriter, r *http.Request) {
	if !h.limit(w, r) {
		return
	}
	var create models.UserCreate
	if err := jsonapi.Decode(r, &create); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().UserCreate(projectID(r), create)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleUserGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Client().UserGet(projectID(r), chi.URLParam(r, "userId"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleUserUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.limit(w, r) {
		return
	}
	var update models.UserUpdate
	if err := jsonapi.Decode(r, &update); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().UserUpdate(projectID(r), chi.URLParam(r, "userId"), update)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleUserDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Srv.Client().UserDelete(projectID(r)); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleUserLogin(w http.ResponseWriter, r *http.Request) {
	if !h.limit(w, r) {
		return
	}
	var login models.UserLogin
	if err := jsonapi.Decode(r, &login); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().UserLogin(projectID(r), login)
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleUserLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Srv.Client().UserLogout(projectID(r)); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleUserBind(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Client().UserBind(projectID(r))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := jsonapi.Decode(r, &req); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	if err := h.Srv.Client().ForgotPassword(projectID(r), req.Email); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleTransactionSearch(w http.ResponseWriter, r *http.Request) {
	var search models.TransactionSearch
	if err := jsonapi.Decode(r, &search); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	res, err := h.Srv.Client().TransactionSearch(projectID(r), search, r.URL.Query().Get("cursor"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleNotificationSearch(w http.ResponseWriter, r *http.Request) {
	res, err := h.Srv.Client().NotificationSearch(projectID(r), r.URL.Query().Get("cursor"))
	if err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, res)
}

func (h *Handler) HandleNotificationClear(w http.ResponseWriter, r *http.Request) {
	if err := h.Srv.Client().NotificationClear(projectID(r), chi.URLParam(r, "notificationId")); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}

func (h *Handler) HandleNotificationClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Srv.Client().NotificationClearAll(projectID(r)); err != nil {
		jsonapi.WriteError(w, h.Log, err)
		return
	}
	jsonapi.Write(w, http.StatusOK, nil)
}
