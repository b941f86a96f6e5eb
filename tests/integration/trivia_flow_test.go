//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestCreateListDelete(t *testing.T) {
	before := totalQuestions(t)

	id := createQuestion(t, "What is your name ?", "4", 5)
	if got := totalQuestions(t); got != before+1 {
		t.Fatalf("total_questions: want %d, got %d", before+1, got)
	}

	status, body := call(t, http.MethodGet, fmt.Sprintf("/questions/%d", id), nil)
	if status != http.StatusOK {
		t.Fatalf("fetch created question: status %d: %v", status, body)
	}

	status, body = call(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)
	if status != http.StatusOK || int(body["deleted"].(float64)) != id {
		t.Fatalf("delete: status %d body %v", status, body)
	}

	status, _ = call(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("second delete: want 422, got %d", status)
	}
}

func TestSearch(t *testing.T) {
	id := createQuestion(t, "Integration TITLE probe", "1", 1)
	defer deleteQuestion(t, id)

	status, body := call(t, http.MethodPost, "/questions/search", map[string]string{"searchTerm": "title probe"})
	if status != http.StatusOK {
		t.Fatalf("search: unexpected status %d", status)
	}
	found := false
	for _, item := range body["questions"].([]interface{}) {
		q := item.(map[string]interface{})
		if !strings.Contains(strings.ToLower(q["question"].(string)), "title probe") {
			t.Fatalf("unexpected match: %v", q["question"])
		}
		if int(q["id"].(float64)) == id {
			found = true
		}
	}
	if !found {
		t.Fatalf("created question %d not returned by search", id)
	}

	status, body = call(t, http.MethodPost, "/questions/search", map[string]string{"searchTerm": "kimikkjhgghn"})
	if status != http.StatusOK || len(body["questions"].([]interface{})) != 0 {
		t.Fatalf("search miss: status %d body %v", status, body)
	}
}

func TestQuizNeverRepeats(t *testing.T) {
	ids := []int{
		createQuestion(t, "quiz probe a", "6", 1),
		createQuestion(t, "quiz probe b", "6", 2),
	}
	defer func() {
		for _, id := range ids {
			deleteQuestion(t, id)
		}
	}()

	previous := []int{}
	for {
		status, body := call(t, http.MethodPost, "/quizzes", map[string]interface{}{
			"previous_questions": previous,
			"quiz_category":      map[string]interface{}{"id": 6, "type": "Sports"},
		})
		if status != http.StatusOK {
			t.Fatalf("quiz: unexpected status %d", status)
		}
		if body["question"] == nil {
			break
		}
		q := body["question"].(map[string]interface{})
		id := int(q["id"].(float64))
		for _, seen := range previous {
			if seen == id {
				t.Fatalf("question %d returned twice", id)
			}
		}
		if q["category"] != "6" {
			t.Fatalf("question from wrong category: %v", q["category"])
		}
		previous = append(previous, id)
	}
	if len(previous) < len(ids) {
		t.Fatalf("quiz ended after %d questions, expected at least %d", len(previous), len(ids))
	}
}
