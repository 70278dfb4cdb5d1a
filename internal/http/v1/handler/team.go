package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"team-membership/internal/apperrors"
	"team-membership/internal/domain/models"
	"team-membership/internal/http/v1/apierror"
	"team-membership/internal/service"
)

type (
	MemberRequest struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	CreateTeamRequest struct {
		Name    string          `json:"name"`
		Members []MemberRequest `json:"members"`
	}

	TeamResponse struct {
		Team *models.Team `json:"team"`
	}
)

type TeamHandler struct {
	teamService *service.TeamService
	log         *slog.Logger
}

func NewTeamHandler(teamService *service.TeamService, log *slog.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		log:         log,
	}
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	const op = "handler.team.CreateTeam"

	log := h.log.With(slog.String("op", op))

	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, log, apperrors.InvalidBody(err))
		return
	}

	members := make([]models.TeammateParams, len(req.Members))
	for i, m := range req.Members {
		members[i] = models.TeammateParams{Name: m.Name, Email: m.Email}
	}

	team, err := h.teamService.CreateTeam(r.Context(), req.Name, members)
	if err != nil {
		apierror.Write(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, TeamResponse{Team: team})
}

func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	const op = "handler.team.GetTeam"

	log := h.log.With(slog.String("op", op))

	team, err := h.teamService.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		apierror.Write(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, TeamResponse{Team: team})
}
