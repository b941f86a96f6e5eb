package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Monirah1998/trivia-udacity/internal/logging"
	"github.com/Monirah1998/trivia-udacity/internal/question"
	httperrors "github.com/Monirah1998/trivia-udacity/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandler serves POST /quizzes.
type HTTPHandler struct {
	selector *Selector
}

// NewHTTPHandler constructs a quiz HTTP handler.
func NewHTTPHandler(selector *Selector) *HTTPHandler {
	return &HTTPHandler{selector: selector}
}

// Register mounts the route on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /quizzes", h.Next)
}

// Next handles POST /quizzes. When no unseen question is left the response
// carries "question": null.
func (h *HTTPHandler) Next(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	var req Request
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Debug().Err(err).Msg("quiz request body rejected")
		httperrors.RespondError(w, question.DecodeStatus(err))
		return
	}

	next, err := h.selector.Next(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidSelector) || errors.Is(err, question.ErrInvalidInput) {
			logger.Warn().Err(err).Msg("quiz request unprocessable")
			httperrors.RespondUnprocessable(w)
			return
		}
		logger.Error().Err(err).Msg("quiz draw failed")
		httperrors.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"question": next,
	}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
