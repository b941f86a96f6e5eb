package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Monirah1998/trivia-udacity/internal/db/memstore"
	"github.com/Monirah1998/trivia-udacity/internal/db/repository"
	sqlcgen "github.com/Monirah1998/trivia-udacity/internal/db/sqlc"
)

var testCategories = []sqlcgen.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

func newTestService(store *memstore.Store, cache CategoryCache) *Service {
	return NewService(
		repository.NewQuestionRepository(store),
		repository.NewCategoryRepository(store),
		zerolog.New(io.Discard),
		ServiceOptions{Cache: cache},
	)
}

// seedQuestions inserts n questions spread over categories 1..3.
func seedQuestions(store *memstore.Store, n int) []int {
	params := make([]sqlcgen.InsertQuestionParams, 0, n)
	for i := 0; i < n; i++ {
		params = append(params, sqlcgen.InsertQuestionParams{
			Question:   fmt.Sprintf("Question number %d", i+1),
			Answer:     fmt.Sprintf("Answer %d", i+1),
			Category:   fmt.Sprint(i%3 + 1),
			Difficulty: int32(i%5 + 1),
		})
	}
	return store.Seed(params...)
}

func newTestMux(store *memstore.Store) *http.ServeMux {
	mux := http.NewServeMux()
	NewHTTPHandler(newTestService(store, nil)).Register(mux)
	return mux
}

type envelope map[string]interface{}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func questionIDs(t *testing.T, body envelope) []int {
	t.Helper()
	raw, ok := body["questions"].([]interface{})
	require.True(t, ok, "questions should be a list")
	ids := make([]int, 0, len(raw))
	for _, item := range raw {
		q := item.(map[string]interface{})
		ids = append(ids, int(q["id"].(float64)))
	}
	return ids
}
