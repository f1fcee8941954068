package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", NotFound("missing"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestError(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("failed to write", cause)

	assert.Equal(t, "failed to write: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "missing", NotFound("missing").Error())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("x").StatusCode())
	assert.Equal(t, http.StatusNotFound, NotFound("x").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal("x", nil).StatusCode())
}
