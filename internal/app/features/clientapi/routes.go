// internal/app/features/clientapi/routes.go
package clientapi

import "github.com/go-chi/chi/v5"

// Routes mounts the project-scoped client API.
// Typically: r.Mount("/api/v1/project/{projectId}", clientapi.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/bind", h.HandleBind)

	r.Post("/idea", h.HandleIdeaCreate)
	r.Post("/ideasearch", h.HandleIdeaSearch)
	r.Get("/idea/{ideaId}", h.HandleIdeaGet)
	r.Patch("/idea/{ideaId}", h.HandleIdeaUpdate)
	r.Delete("/idea/{ideaId}", h.HandleIdeaDelete)
	r.Patch("/idea/{ideaId}/vote", h.HandleIdeaVoteUpdate)
	r.Post("/vote/ideas", h.HandleIdeaVoteGetOwn)

	r.Post("/idea/{ideaId}/comment", h.HandleCommentCreate)
	r.Post("/idea/{ideaId}/commentsearch", h.HandleCommentList)
	r.Patch("/comment/{commentId}", h.HandleCommentUpdate)
	r.Delete("/comment/{commentId}", h.HandleCommentDelete)
	r.Patch("/comment/{commentId}/vote", h.HandleCommentVoteUpdate)
	r.Post("/vote/comments", h.HandleCommentVoteGetOwn)

	r.Post("/user", h.HandleUserCreate)
	r.Get("/user/{userId}", h.HandleUserGet)
	r.Patch("/user/{userId}", h.HandleUserUpdate)
	r.Delete("/user", h.HandleUserDelete)
	r.Post("/userlogin", h.HandleUserLogin)
	r.Post("/userlogout", h.HandleUserLogout)
	r.Get("/userbind", h.HandleUserBind)
	r.Post("/forgotpassword", h.HandleForgotPassword)

	r.Post("/transactionsearch", h.HandleTransactionSearch)
	r.Get("/notificationsearch", h.HandleNotificationSearch)
	r.Delete("/notification/{notificationId}", h.HandleNotificationClear)
	r.Delete("/notification", h.HandleNotificationClearAll)

	return r
}
