package apperrors

import "errors"

var ErrInvalidRequest = errors.New("request is not valid")

// InvalidBody reports an undecodable request body as a violation on "body".
func InvalidBody(err error) *ValidationFailure {
	return NewValidationFailure(ErrInvalidRequest, []Violation{{Field: "body", Message: "invalid request body: " + err.Error()}})
}
