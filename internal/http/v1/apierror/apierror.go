// Package apierror is the single place where failures raised by the
// repositories are turned into HTTP responses.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"team-membership/internal/apperrors"
	"team-membership/internal/lib/logger/sl"
)

// ErrorEntity is the body of every error response.
type ErrorEntity struct {
	Kind       apperrors.Kind        `json:"kind"`
	Status     int                   `json:"status"`
	Message    string                `json:"message"`
	Type       string                `json:"type,omitempty"`
	Constraint string                `json:"constraint,omitempty"`
	Violations []apperrors.Violation `json:"violations,omitempty"`
}

type Response struct {
	Status int
	Body   ErrorEntity
}

type rule struct {
	kind   apperrors.Kind
	status int
	body   func(err error) ErrorEntity
}

// rules is evaluated top to bottom; the generic rule matches anything left.
var rules = []rule{
	{kind: apperrors.KindValidation, status: http.StatusBadRequest, body: validationBody},
	{kind: apperrors.KindConflict, status: http.StatusConflict, body: conflictBody},
	{kind: apperrors.KindNotFound, status: http.StatusNotFound, body: notFoundBody},
	{kind: apperrors.KindGeneric, status: http.StatusInternalServerError, body: genericBody},
}

// Translate maps err to its status and body. A nil err is treated as a generic failure.
func Translate(err error) Response {
	if err == nil {
		err = errors.New("unknown error")
	}

	kind := apperrors.KindOf(err)

	r := rules[len(rules)-1]
	for _, candidate := range rules {
		if candidate.kind == kind {
			r = candidate
			break
		}
	}

	body := r.body(err)
	body.Kind = r.kind
	body.Status = r.status

	return Response{Status: r.status, Body: body}
}

// Write translates err, logs it and renders the JSON body.
func Write(w http.ResponseWriter, log *slog.Logger, err error) {
	resp := Translate(err)

	if resp.Status >= http.StatusInternalServerError {
		log.Error("request failed", slog.String("kind", string(resp.Body.Kind)), sl.Err(err))
	} else {
		log.Info("request rejected", slog.String("kind", string(resp.Body.Kind)), sl.Err(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp.Body); err != nil {
		log.Error("failed to encode error response", sl.Err(err))
	}
}

func validationBody(err error) ErrorEntity {
	var failure *apperrors.ValidationFailure
	errors.As(err, &failure)

	return ErrorEntity{
		Message:    failure.Error(),
		Violations: failure.Violations,
	}
}

func conflictBody(err error) ErrorEntity {
	var failure *apperrors.ConflictFailure
	errors.As(err, &failure)

	return ErrorEntity{
		Message:    failure.Error(),
		Constraint: failure.Field,
	}
}

func notFoundBody(err error) ErrorEntity {
	var failure *apperrors.NotFoundFailure
	errors.As(err, &failure)

	return ErrorEntity{Message: failure.Error()}
}

// genericBody exposes the innermost error's type and message, nothing else.
func genericBody(err error) ErrorEntity {
	root := err
	for next := errors.Unwrap(root); next != nil; next = errors.Unwrap(root) {
		root = next
	}

	return ErrorEntity{
		Type:    fmt.Sprintf("%T", root),
		Message: root.Error(),
	}
}
