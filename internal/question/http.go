package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Monirah1998/trivia-udacity/internal/logging"
	httperrors "github.com/Monirah1998/trivia-udacity/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandler exposes the /categories and /questions endpoints.
type HTTPHandler struct {
	svc *Service
}

// NewHTTPHandler constructs a question HTTP handler.
func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Register mounts the routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.ListCategories)
	mux.HandleFunc("GET /categories/{id}", h.GetCategory)
	mux.HandleFunc("GET /categories/{id}/questions", h.ListByCategory)
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.CreateQuestion)
	mux.HandleFunc("GET /questions/{id}", h.GetQuestion)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("POST /questions/search", h.SearchQuestions)
}

// ListCategories handles GET /categories. Any lookup failure is a 404.
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		fail(w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":          true,
		"categories":       categories,
		"total_categories": len(categories),
	})
}

// GetCategory handles GET /categories/{id}.
func (h *HTTPHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	category, err := h.svc.Category(r.Context(), id)
	if err != nil {
		fail(w, r, statusFor(err, http.StatusNotFound), err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":  true,
		"category": category,
	})
}

// ListQuestions handles GET /questions?page=N. Any failure, including a page
// past the end, is a 404.
func (h *HTTPHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := h.svc.List(ctx, ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		fail(w, r, http.StatusNotFound, err)
		return
	}
	types, err := h.svc.CategoryTypes(ctx)
	if err != nil {
		fail(w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"categories":       types,
		"current_category": nil,
	})
}

// GetQuestion handles GET /questions/{id}.
func (h *HTTPHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		fail(w, r, statusFor(err, http.StatusNotFound), err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

// DeleteQuestion handles DELETE /questions/{id}. A missing question cannot be
// deleted, which is reported as 422.
func (h *HTTPHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		fail(w, r, statusFor(err, http.StatusUnprocessableEntity), err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success": true,
		"deleted": deleted,
	})
}

// CreateQuestion handles POST /questions.
func (h *HTTPHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if !decode(w, r, &req) {
		return
	}
	id, err := h.svc.Create(r.Context(), req)
	if err != nil {
		fail(w, r, statusFor(err, http.StatusUnprocessableEntity), err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success": true,
		"created": id,
	})
}

// SearchQuestions handles POST /questions/search. The result is not paginated.
func (h *HTTPHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decode(w, r, &req) {
		return
	}
	questions, err := h.svc.Search(r.Context(), req.SearchTerm)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":          true,
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": nil,
	})
}

// ListByCategory handles GET /categories/{id}/questions?page=N. Unknown
// categories are an empty success.
func (h *HTTPHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	page, err := h.svc.ByCategory(r.Context(), id, ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		fail(w, r, statusFor(err, http.StatusNotFound), err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"current_category": id,
	})
}

// statusFor maps the service error taxonomy onto a status code. notFound is
// the status the endpoint reports for ErrNotFound.
func statusFor(err error, notFound int) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return notFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// decode reads a JSON body into dst. Unparseable bodies are 400; valid JSON
// carrying a field of the wrong type is 422.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	logger := logging.FromContext(r.Context())
	logger.Debug().Err(err).Msg("request body rejected")
	httperrors.RespondError(w, DecodeStatus(err))
	return false
}

// DecodeStatus maps a JSON decoding failure onto the status reported to the
// client.
func DecodeStatus(err error) int {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger := logging.FromContext(r.Context())
	evt := logger.Warn()
	if status >= http.StatusInternalServerError || !(errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput)) {
		evt = logger.Error()
	}
	evt.Err(err).Int("status", status).Msg("request failed")
	httperrors.RespondError(w, status)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
