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
	TeammateResponse struct {
		Teammate *models.Teammate `json:"teammate"`
	}

	ValidateResponse struct {
		Valid      bool                  `json:"valid"`
		Violations []apperrors.Violation `json:"violations"`
	}
)

type TeammateHandler struct {
	teammateService *service.TeammateService
	log             *slog.Logger
}

func NewTeammateHandler(teammateService *service.TeammateService, log *slog.Logger) *TeammateHandler {
	return &TeammateHandler{
		teammateService: teammateService,
		log:             log,
	}
}

func (h *TeammateHandler) AddTeammate(w http.ResponseWriter, r *http.Request) {
	const op = "handler.teammate.AddTeammate"

	log := h.log.With(slog.String("op", op))

	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, log, apperrors.InvalidBody(err))
		return
	}

	teammate, err := h.teammateService.AddTeammate(r.Context(), chi.URLParam(r, "teamID"),
		models.TeammateParams{Name: req.Name, Email: req.Email})
	if err != nil {
		apierror.Write(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusCreated, TeammateResponse{Teammate: teammate})
}

func (h *TeammateHandler) FindTeammate(w http.ResponseWriter, r *http.Request) {
	const op = "handler.teammate.FindTeammate"

	log := h.log.With(slog.String("op", op))

	teammate, err := h.teammateService.FindTeammate(r.Context(),
		chi.URLParam(r, "teamID"), r.URL.Query().Get("email"))
	if err != nil {
		apierror.Write(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, TeammateResponse{Teammate: teammate})
}

// Validate reports the violation set of a candidate teammate without storing it.
func (h *TeammateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	const op = "handler.teammate.Validate"

	log := h.log.With(slog.String("op", op))

	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, log, apperrors.InvalidBody(err))
		return
	}

	violations := h.teammateService.Validate(models.TeammateParams{Name: req.Name, Email: req.Email})
	if violations == nil {
		violations = []apperrors.Violation{}
	}

	writeJSON(w, log, http.StatusOK, ValidateResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	})
}
