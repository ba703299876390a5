package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("note not found")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("nope")))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", Conflict("email already registered"))
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence(cause)

	assert.Equal(t, KindPersistence, err.Kind)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "database error")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsMatchesByKindAndMessage(t *testing.T) {
	err := Validation("cannot share a note with yourself")

	assert.ErrorIs(t, err, Validation("cannot share a note with yourself"))
	assert.NotErrorIs(t, err, Validation("user is already a collaborator"))
	assert.NotErrorIs(t, err, Forbidden("cannot share a note with yourself"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "conflict", KindConflict.String())
	assert.Equal(t, "unauthorized", KindUnauthorized.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
