package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validation("missing field")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("prompt not found")))
	assert.Equal(t, http.StatusConflict, Status(Conflict("email already exists")))
	assert.Equal(t, http.StatusInternalServerError, Status(Persistence("store down", errors.New("dial tcp"))))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("unclassified")))
}

func TestMessageSuppressesCause(t *testing.T) {
	err := Persistence("failed to create prompt", errors.New("connection refused"))
	assert.Equal(t, "failed to create prompt", Message(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("prompt not found"))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindValidation))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dial tcp")
	err := Persistence("store down", cause)
	assert.ErrorIs(t, err, cause)
}

func TestMessageUnclassified(t *testing.T) {
	assert.Equal(t, "internal server error", Message(errors.New("driver detail")))
}
