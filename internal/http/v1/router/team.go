package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"team-membership/internal/http/v1/handler"
	"team-membership/internal/service"
)

type TeamRouter struct {
	handler *handler.TeamHandler
}

func NewTeamRouter(teamService *service.TeamService, log *slog.Logger) *TeamRouter {
	return &TeamRouter{
		handler: handler.NewTeamHandler(teamService, log),
	}
}

func (tr *TeamRouter) SetupRoutes(r chi.Router) {
	r.Post("/teams", tr.handler.CreateTeam)
	r.Get("/teams/{teamID}", tr.handler.GetTeam)
}
