package handler

import (
	"log/slog"
	"net/http"

	"team-membership/internal/domain/models"
	"team-membership/internal/http/v1/apierror"
	"team-membership/internal/service"
)

type StatsResponse struct {
	Stats *models.TeamStats `json:"stats"`
}

type StatsHandler struct {
	statsService *service.StatsService
	log          *slog.Logger
}

func NewStatsHandler(statsService *service.StatsService, log *slog.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		log:          log,
	}
}

func (h *StatsHandler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	const op = "handler.stats.GetTeamStats"

	log := h.log.With(slog.String("op", op))

	stats, err := h.statsService.GetTeamStats(r.Context())
	if err != nil {
		apierror.Write(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, StatsResponse{Stats: stats})
}
