package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"team-membership/internal/lib/logger/sl"
)

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode JSON response", sl.Err(err))
	}
}
