package question

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Monirah1998/trivia-udacity/internal/db/memstore"
	sqlcgen "github.com/Monirah1998/trivia-udacity/internal/db/sqlc"
)

func TestListCategoriesHandler(t *testing.T) {
	mux := newTestMux(memstore.New(testCategories...))

	rec, body := doJSON(t, mux, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, true, body["success"])

	categories := body["categories"].([]interface{})
	require.Len(t, categories, 6)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Science", first["type"])
}

func TestListCategoriesStoreFailureIsNotFound(t *testing.T) {
	store := memstore.New(testCategories...)
	store.Fail = errors.New("db down")
	mux := newTestMux(store)

	rec, body := doJSON(t, mux, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(404), body["error"])
	assert.Equal(t, "resource not found", body["message"])
}

func TestGetCategoryHandler(t *testing.T) {
	mux := newTestMux(memstore.New(testCategories...))

	rec, body := doJSON(t, mux, http.MethodGet, "/categories/3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Geography", body["category"].(map[string]interface{})["type"])

	rec, _ = doJSON(t, mux, http.MethodGet, "/categories/19", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, mux, http.MethodGet, "/categories/abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListQuestionsPages(t *testing.T) {
	store := memstore.New(testCategories...)
	ids := seedQuestions(store, 23)
	mux := newTestMux(store)

	for page, want := range map[string][]int{
		"":        ids[0:10],
		"?page=1": ids[0:10],
		"?page=2": ids[10:20],
		"?page=3": ids[20:23],
		"?page=x": ids[0:10],
	} {
		rec, body := doJSON(t, mux, http.MethodGet, "/questions"+page, nil)
		require.Equal(t, http.StatusOK, rec.Code, page)
		assert.Equal(t, want, questionIDs(t, body), page)
		assert.Equal(t, float64(23), body["total_questions"])
		assert.Nil(t, body["current_category"])
		assert.Contains(t, body, "current_category")

		cats := body["categories"].(map[string]interface{})
		assert.Equal(t, "Art", cats["2"])
	}
}

func TestListQuestionsPageBeyondLastIsNotFound(t *testing.T) {
	store := memstore.New(testCategories...)
	seedQuestions(store, 23)
	mux := newTestMux(store)

	rec, body := doJSON(t, mux, http.MethodGet, "/questions?page=10000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestListQuestionsFormattedRecord(t *testing.T) {
	store := memstore.New(testCategories...)
	store.Seed(sqlcgen.InsertQuestionParams{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: "4", Difficulty: 2})
	mux := newTestMux(store)

	_, body := doJSON(t, mux, http.MethodGet, "/questions", nil)
	q := body["questions"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Maya Angelou", q["answer"])
	assert.Equal(t, "4", q["category"])
	assert.Equal(t, float64(2), q["difficulty"])
	assert.Len(t, q, 5)
}

func TestDeleteQuestionHandler(t *testing.T) {
	store := memstore.New(testCategories...)
	ids := seedQuestions(store, 5)
	mux := newTestMux(store)
	target := ids[2]

	rec, body := doJSON(t, mux, http.MethodDelete, "/questions/"+itoa(target), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(target), body["deleted"])

	_, body = doJSON(t, mux, http.MethodGet, "/questions", nil)
	assert.NotContains(t, questionIDs(t, body), target)
	assert.Equal(t, float64(4), body["total_questions"])

	rec, body = doJSON(t, mux, http.MethodDelete, "/questions/"+itoa(target), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, float64(422), body["error"])
	assert.Equal(t, "unprocessable", body["message"])
}

func TestDeleteQuestionStoreFailureIsServerError(t *testing.T) {
	store := memstore.New(testCategories...)
	store.Fail = errors.New("db down")
	mux := newTestMux(store)

	rec, _ := doJSON(t, mux, http.MethodDelete, "/questions/1", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateQuestionHandler(t *testing.T) {
	store := memstore.New(testCategories...)
	seedQuestions(store, 3)
	mux := newTestMux(store)

	rec, body := doJSON(t, mux, http.MethodPost, "/questions", map[string]interface{}{
		"question":   "What is your name ?",
		"answer":     "Monirah",
		"category":   "4",
		"difficulty": 5,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	created := int(body["created"].(float64))

	_, body = doJSON(t, mux, http.MethodGet, "/questions", nil)
	assert.Equal(t, float64(4), body["total_questions"])

	rec, body = doJSON(t, mux, http.MethodGet, "/questions/"+itoa(created), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "What is your name ?", body["question"].(map[string]interface{})["question"])
}

func TestCreateQuestionRejectsBadInput(t *testing.T) {
	mux := newTestMux(memstore.New(testCategories...))

	rec, body := doJSON(t, mux, http.MethodPost, "/questions", map[string]interface{}{
		"question":   "why you join Full stack development?",
		"category":   "1",
		"answer":     "",
		"difficulty": 1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, false, body["success"])

	rec, _ = doJSON(t, mux, http.MethodPost, "/questions", map[string]interface{}{
		"question":   "q",
		"answer":     "a",
		"category":   "1",
		"difficulty": "hard",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, body = doJSON(t, mux, http.MethodPost, "/questions", `{"question": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad request", body["message"])
}

func TestCreateQuestionWrongFieldTypeIsUnprocessable(t *testing.T) {
	store := memstore.New(testCategories...)
	mux := newTestMux(store)

	for _, raw := range []string{
		`{"question":123,"answer":"a","category":1,"difficulty":1}`,
		`{"question":"q","answer":["a"],"category":1,"difficulty":1}`,
	} {
		rec, body := doJSON(t, mux, http.MethodPost, "/questions", raw)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, raw)
		assert.Equal(t, "unprocessable", body["message"], raw)
	}

	_, body := doJSON(t, mux, http.MethodGet, "/questions", nil)
	assert.Equal(t, float64(0), body["total_questions"])
}

func TestDecodeStatus(t *testing.T) {
	var dst CreateRequest
	err := json.Unmarshal([]byte(`{"question":1}`), &dst)
	assert.Equal(t, http.StatusUnprocessableEntity, DecodeStatus(err))

	err = json.Unmarshal([]byte(`{"question":`), &dst)
	assert.Equal(t, http.StatusBadRequest, DecodeStatus(err))

	assert.Equal(t, http.StatusBadRequest, DecodeStatus(io.EOF))
}

func TestSearchQuestionsHandler(t *testing.T) {
	store := memstore.New(testCategories...)
	store.Seed(
		sqlcgen.InsertQuestionParams{Question: "What movie earned Tom Hanks his third straight Oscar nomination?", Answer: "Apollo 13", Category: "5", Difficulty: 4},
		sqlcgen.InsertQuestionParams{Question: "What was the TITLE of the 1990 fantasy film?", Answer: "Edward Scissorhands", Category: "5", Difficulty: 3},
		sqlcgen.InsertQuestionParams{Question: "Which book has the title 'Gatsby'?", Answer: "The Great Gatsby", Category: "2", Difficulty: 2},
	)
	mux := newTestMux(store)

	rec, body := doJSON(t, mux, http.MethodPost, "/questions/search", map[string]string{"searchTerm": "title"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{2, 3}, questionIDs(t, body))
	assert.Equal(t, float64(2), body["total_questions"])

	rec, body = doJSON(t, mux, http.MethodPost, "/questions/search", map[string]string{"searchTerm": "kimikkjhgghn"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, questionIDs(t, body))

	_, body = doJSON(t, mux, http.MethodPost, "/questions/search", map[string]string{})
	assert.Len(t, questionIDs(t, body), 3)

	_, body = doJSON(t, mux, http.MethodPost, "/questions/search", map[string]string{"searchTerm": "%"})
	assert.Empty(t, questionIDs(t, body))
}

func TestListByCategoryHandler(t *testing.T) {
	store := memstore.New(testCategories...)
	seedQuestions(store, 9)
	mux := newTestMux(store)

	rec, body := doJSON(t, mux, http.MethodGet, "/categories/2/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{2, 5, 8}, questionIDs(t, body))
	assert.Equal(t, float64(3), body["total_questions"])
	assert.Equal(t, float64(2), body["current_category"])

	rec, body = doJSON(t, mux, http.MethodGet, "/categories/100/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, questionIDs(t, body))

	rec, _ = doJSON(t, mux, http.MethodGet, "/categories/2/questions?page=4", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
