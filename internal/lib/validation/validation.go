// Package validation checks field-level constraints on teams and teammates
// before they are allowed to reach storage.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"team-membership/internal/apperrors"
	"team-membership/internal/domain/models"
)

const (
	MsgNameRequired   = "name cannot be null"
	MsgMalformedEmail = "must be a well-formed email address"
)

// messages maps the leaf field name to the reason reported for any rule failing on it.
var messages = map[string]string{
	"name":  MsgNameRequired,
	"email": MsgMalformedEmail,
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("wellformed_email", wellFormedEmail); err != nil {
		panic("validation: register wellformed_email: " + err.Error())
	}

	return &Validator{validate: v}
}

// Teammate returns every violation found on t. An empty result means t may be persisted.
func (v *Validator) Teammate(t *models.Teammate) []apperrors.Violation {
	return violations(v.validate.Struct(t))
}

// Team returns every violation found on t and its members. Member fields are
// reported as members[i].field.
func (v *Validator) Team(t *models.Team) []apperrors.Violation {
	return violations(v.validate.Struct(t))
}

func violations(err error) []apperrors.Violation {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []apperrors.Violation{{Message: err.Error()}}
	}

	out := make([]apperrors.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, apperrors.Violation{
			Field:   fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name: "Team.members[0].email" -> "members[0].email".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()]; ok {
		return msg
	}
	return fe.Field() + " failed on " + fe.Tag()
}

// wellFormedEmail accepts addresses the stock email rule accepts whose domain
// also contains at least one inner dot.
func wellFormedEmail(fl validator.FieldLevel) bool {
	addr := fl.Field().String()

	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return false
	}

	domain := addr[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	return emailRule.Var(addr, "email") == nil
}

var emailRule = validator.New()
