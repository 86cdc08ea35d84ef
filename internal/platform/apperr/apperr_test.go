package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not found", apperr.NotFound("Book"), http.StatusNotFound, "NOT_FOUND"},
		{"validation", apperr.ValidationError("bad"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"no more results", apperr.NoMoreResults(), http.StatusConflict, "NO_MORE_RESULTS"},
		{"rate limited", apperr.RateLimited(3), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"internal", apperr.Internal(errors.New("x")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"unavailable", apperr.ServiceUnavailable("down"), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Error())
		})
	}

	assert.Equal(t, "Book not found", apperr.NotFound("Book").Message)
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "relation")
	assert.ErrorIs(t, err, cause)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("browse: %w", apperr.NotFound("Session"))

	found := apperr.As(wrapped)
	require.NotNil(t, found)
	assert.Equal(t, "NOT_FOUND", found.Code)

	assert.Nil(t, apperr.As(errors.New("plain")))
}
