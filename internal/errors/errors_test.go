package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ValidationError("x").HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, AuthenticationError("x").HTTPStatus())
	assert.Equal(t, http.StatusForbidden, ForbiddenError("x").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFoundError("x").HTTPStatus())
	assert.Equal(t, http.StatusConflict, ConflictError("x").HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, ExternalError("x", nil).HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, InternalError("x", nil).HTTPStatus())
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := InternalError("store failure", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store failure")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWithField(t *testing.T) {
	err := ValidationError("bad input").WithField("field", "email")
	assert.Equal(t, "email", err.Context["field"])
}

func TestToResponse_HidesCause(t *testing.T) {
	err := InternalError("store failure", fmt.Errorf("password=hunter2"))
	resp := err.ToResponse()

	assert.Equal(t, "store failure", resp.Error)
	assert.Equal(t, TypeInternal, resp.Type)
	assert.NotContains(t, fmt.Sprintf("%+v", resp), "hunter2")
}

func TestAsStructuredError(t *testing.T) {
	structured := ConflictError("duplicate")
	assert.Same(t, structured, AsStructuredError(structured))

	wrapped := AsStructuredError(errors.New("boom"))
	require.NotNil(t, wrapped)
	assert.Equal(t, TypeInternal, wrapped.Type)

	assert.Nil(t, AsStructuredError(nil))
}
