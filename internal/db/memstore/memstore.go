// Package memstore is test support: an in-memory stand-in for the sqlc
// query set, shared by the question, quiz and server package tests. It is
// never wired into the running service. It mirrors the SQL semantics closely
// enough for handler tests: id ordering, serial ids, ILIKE with backslash
// escapes and the quiz candidate filter.
package memstore

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	sqlcgen "github.com/Monirah1998/trivia-udacity/internal/db/sqlc"
)

// Store holds categories and questions behind a mutex.
type Store struct {
	mu         sync.Mutex
	nextID     int32
	categories []sqlcgen.Category
	questions  []sqlcgen.Question

	// Fail, when set, is returned from every query.
	Fail error
}

// New returns a store seeded with categories.
func New(categories ...sqlcgen.Category) *Store {
	return &Store{categories: slices.Clone(categories), nextID: 1}
}

// Seed inserts questions and returns their ids.
func (s *Store) Seed(questions ...sqlcgen.InsertQuestionParams) []int {
	ids := make([]int, 0, len(questions))
	for _, q := range questions {
		row, _ := s.InsertQuestion(context.Background(), q)
		ids = append(ids, int(row.ID))
	}
	return ids
}

func (s *Store) ListCategories(_ context.Context) ([]sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	return slices.Clone(s.categories), nil
}

func (s *Store) GetCategory(_ context.Context, id int32) (sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return sqlcgen.Category{}, s.Fail
	}
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return sqlcgen.Category{}, pgx.ErrNoRows
}

func (s *Store) ListQuestions(_ context.Context) ([]sqlcgen.Question, error) {
	return s.filter(func(sqlcgen.Question) bool { return true })
}

func (s *Store) GetQuestion(_ context.Context, id int32) (sqlcgen.Question, error) {
	rows, err := s.filter(func(q sqlcgen.Question) bool { return q.ID == id })
	if err != nil {
		return sqlcgen.Question{}, err
	}
	if len(rows) == 0 {
		return sqlcgen.Question{}, pgx.ErrNoRows
	}
	return rows[0], nil
}

func (s *Store) ListQuestionsByCategory(_ context.Context, category string) ([]sqlcgen.Question, error) {
	return s.filter(func(q sqlcgen.Question) bool { return q.Category == category })
}

func (s *Store) SearchQuestions(_ context.Context, pattern string) ([]sqlcgen.Question, error) {
	needle := strings.ToLower(unescapeLike(pattern))
	return s.filter(func(q sqlcgen.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	})
}

func (s *Store) ListQuizCandidates(_ context.Context, arg sqlcgen.ListQuizCandidatesParams) ([]sqlcgen.Question, error) {
	if arg.Excluded == nil {
		// matches Postgres: id = ANY(NULL) is NULL, so nothing qualifies
		return []sqlcgen.Question{}, nil
	}
	return s.filter(func(q sqlcgen.Question) bool {
		if slices.Contains(arg.Excluded, q.ID) {
			return false
		}
		return arg.Category == "" || q.Category == arg.Category
	})
}

func (s *Store) InsertQuestion(_ context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return sqlcgen.Question{}, s.Fail
	}
	if strings.TrimSpace(arg.Question) == "" || strings.TrimSpace(arg.Answer) == "" || arg.Difficulty < 1 || arg.Difficulty > 5 {
		return sqlcgen.Question{}, &pgconn.PgError{Code: "23514", Message: "new row for relation \"questions\" violates check constraint"}
	}
	row := sqlcgen.Question{
		ID:         s.nextID,
		Question:   arg.Question,
		Answer:     arg.Answer,
		Category:   arg.Category,
		Difficulty: arg.Difficulty,
	}
	s.nextID++
	s.questions = append(s.questions, row)
	return row, nil
}

func (s *Store) DeleteQuestion(_ context.Context, id int32) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return 0, s.Fail
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = slices.Delete(s.questions, i, i+1)
			return id, nil
		}
	}
	return 0, pgx.ErrNoRows
}

func (s *Store) filter(keep func(sqlcgen.Question) bool) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	out := []sqlcgen.Question{}
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

func unescapeLike(pattern string) string {
	var b strings.Builder
	escaped := false
	for _, r := range pattern {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
