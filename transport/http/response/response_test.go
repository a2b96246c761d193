package response_test

import (
	"errors"
	"lumen/shared/constant"
	"lumen/shared/failure"
	"lumen/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	t.Run("validation failure lists fields", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, failure.Validation([]failure.FieldError{
			{Field: "email", Reason: failure.ReasonInvalidEmailFormat, Message: "email must be a valid email address"},
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
		assert.JSONEq(t, `{
			"error": "validation failed: email must be a valid email address",
			"fields": [{"field": "email", "reason": "InvalidEmailFormat", "message": "email must be a valid email address"}]
		}`, rec.Body.String())
	})

	t.Run("unclassified error hides detail", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "Internal Server Error"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, failure.NotFound("booking not found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "booking not found"}`, rec.Body.String())
	})
}

func TestWithGeoJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithGeoJSON(rec, http.StatusOK, map[string]any{"type": "FeatureCollection", "features": []any{}})

	assert.Equal(t, constant.ContentTypeGeoJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t, `{"type": "FeatureCollection", "features": []}`, rec.Body.String())
}
