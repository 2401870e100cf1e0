package response

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/inkwellapp/inkwell-server/internal/errors"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"hello": "world"}, nil)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"hello":"world"`)
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, 400, "bad input", nil)

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "bad input")
}

func TestHandleError_CodedError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, apperrors.NotFound("article not found"), nil)

	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Body.String(), "article not found")
}

func TestHandleError_UnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, assert.AnError, nil)

	assert.Equal(t, 500, rec.Code)
	assert.False(t, strings.Contains(rec.Body.String(), assert.AnError.Error()),
		"internal error details must not leak")
}
