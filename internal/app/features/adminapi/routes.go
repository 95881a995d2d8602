package adminapi

import "github.com/go-chi/chi/v5"

// Routes returns the admin API router. The marketing and account
// entry endpoints are open; everything else requires the operator
// session cookie.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/plans", h.HandlePlansGet)
	r.Get("/legal", h.HandleLegalGet)
	r.Post("/support", h.HandleSupportMessage)

	r.Post("/account/signup", h.HandleAccountSignup)
	r.Post("/account/login", h.HandleAccountLogin)
	r.Get("/account/bind", h.HandleAccountBind)

	r.Group(func(r chi.Router) {
		r.Use(h.Sessions.RequireAccount)

		r.Post("/account/logout", h.HandleAccountLogout)
		r.Patch("/account", h.HandleAccountUpdate)

		r.Post("/project/{projectId}", h.HandleProjectCreate)
		r.Delete("/project/{projectId}", h.HandleProjectDelete)
		r.Get("/project/{projectId}/config", h.HandleConfigGet)
		r.Put("/project/{projectId}/config", h.HandleConfigSet)
		r.Get("/configs", h.HandleConfigGetAll)

		r.Post("/project/{projectId}/idea", h.HandleIdeaCreate)
		r.Post("/project/{projectId}/ideasearch", h.HandleIdeaSearch)
		r.Get("/project/{projectId}/idea/{ideaId}", h.HandleIdeaGet)
		r.Patch("/project/{projectId}/idea/{ideaId}", h.HandleIdeaUpdate)
		r.Delete("/project/{projectId}/idea/{ideaId}", h.HandleIdeaDelete)
		r.Delete("/project/{projectId}/idea", h.HandleIdeaDeleteBulk)

		r.Delete("/project/{projectId}/comment/{commentId}", h.HandleCommentDelete)

		r.Post("/project/{projectId}/user", h.HandleUserCreate)
		r.Post("/project/{projectId}/usersearch", h.HandleUserSearch)
		r.Get("/project/{projectId}/user/{userId}", h.HandleUserGet)
		r.Patch("/project/{projectId}/user/{userId}", h.HandleUserUpdate)
		r.Delete("/project/{projectId}/user/{userId}", h.HandleUserDelete)
		r.Delete("/project/{projectId}/user", h.HandleUserDeleteBulk)

		r.Post("/project/{projectId}/transactionsearch", h.HandleTransactionSearch)
	})

	return r
}
