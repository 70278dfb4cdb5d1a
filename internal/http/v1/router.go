package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"team-membership/internal/apperrors"
	"team-membership/internal/http/v1/apierror"
	"team-membership/internal/http/v1/middleware"
	"team-membership/internal/http/v1/router"
	"team-membership/internal/service"
)

type Router interface {
	SetupRoutes(r chi.Router)
}

type RouterDependencies struct {
	TeamService     *service.TeamService
	TeammateService *service.TeammateService
	StatsService    *service.StatsService
}

// NewHandler builds the root handler with middleware and every resource router.
func NewHandler(deps *RouterDependencies, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(apierror.Recoverer(log))

	noRoute := func(w http.ResponseWriter, req *http.Request) {
		apierror.Write(w, log, apperrors.RouteNotFound(req.Method, req.URL.Path))
	}
	r.NotFound(noRoute)
	r.MethodNotAllowed(noRoute)

	SetupRoutes(r, deps, log)

	return r
}

func SetupRoutes(r chi.Router, deps *RouterDependencies, log *slog.Logger) {
	routers := []Router{
		router.NewTeamRouter(deps.TeamService, log),
		router.NewTeammateRouter(deps.TeammateService, log),
		router.NewStatsRouter(deps.StatsService, log),
	}

	for _, serviceRouter := range routers {
		serviceRouter.SetupRoutes(r)
	}
}
