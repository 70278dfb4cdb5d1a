package postgresql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestDetectConflict(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "uq_teammates_email"})

	constraint, ok := DetectConflict(err)
	assert.True(t, ok)
	assert.Equal(t, "uq_teammates_email", constraint)
}

func TestDetectConflict_OtherCodes(t *testing.T) {
	_, ok := DetectConflict(&pq.Error{Code: "23503", Constraint: "teammates_team_id_fkey"})
	assert.False(t, ok)

	_, ok = DetectConflict(errors.New("plain"))
	assert.False(t, ok)
}
