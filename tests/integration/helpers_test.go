//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

var client = &http.Client{Timeout: 10 * time.Second}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:5000")
}

// call sends a JSON request and decodes the JSON response body.
func call(t *testing.T, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, baseURL()+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return resp.StatusCode, out
}

// createQuestion posts a question and returns its id.
func createQuestion(t *testing.T, text, category string, difficulty int) int {
	t.Helper()

	status, body := call(t, http.MethodPost, "/questions", map[string]interface{}{
		"question":   fmt.Sprintf("%s %d", text, time.Now().UnixNano()),
		"answer":     "integration",
		"category":   category,
		"difficulty": difficulty,
	})
	if status != http.StatusOK {
		t.Fatalf("create question: unexpected status %d: %v", status, body)
	}
	return int(body["created"].(float64))
}

func deleteQuestion(t *testing.T, id int) {
	t.Helper()
	call(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)
}

func totalQuestions(t *testing.T) int {
	t.Helper()
	status, body := call(t, http.MethodGet, "/questions", nil)
	if status != http.StatusOK {
		t.Fatalf("list questions: unexpected status %d", status)
	}
	return int(body["total_questions"].(float64))
}
