package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"team-membership/internal/http/v1/handler"
	"team-membership/internal/service"
)

type TeammateRouter struct {
	handler *handler.TeammateHandler
}

func NewTeammateRouter(teammateService *service.TeammateService, log *slog.Logger) *TeammateRouter {
	return &TeammateRouter{
		handler: handler.NewTeammateHandler(teammateService, log),
	}
}

func (tr *TeammateRouter) SetupRoutes(r chi.Router) {
	r.Post("/teams/{teamID}/members", tr.handler.AddTeammate)
	r.Get("/teams/{teamID}/members", tr.handler.FindTeammate)

	r.Route("/teammates", func(r chi.Router) {
		r.Post("/validate", tr.handler.Validate)
	})
}
