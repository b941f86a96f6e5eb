package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorEnvelope(t *testing.T) {
	cases := []struct {
		status  int
		write   func(http.ResponseWriter)
		message string
	}{
		{http.StatusBadRequest, RespondBadRequest, "bad request"},
		{http.StatusNotFound, RespondNotFound, "resource not found"},
		{http.StatusUnprocessableEntity, RespondUnprocessable, "unprocessable"},
		{http.StatusInternalServerError, RespondInternalError, "internal server error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.write(rec)

		assert.Equal(t, tc.status, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, tc.status, body.Error)
		assert.Equal(t, tc.message, body.Message)
	}
}

func TestMessageFallsBackToStatusText(t *testing.T) {
	assert.Equal(t, "Conflict", Message(http.StatusConflict))
}
