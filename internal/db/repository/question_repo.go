package repository

import (
	"context"
	"math"
	"strconv"
	"strings"

	sqlcgen "github.com/Monirah1998/trivia-udacity/internal/db/sqlc"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]sqlcgen.Question, error)
	GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error)
	ListQuestionsByCategory(ctx context.Context, category string) ([]sqlcgen.Question, error)
	SearchQuestions(ctx context.Context, pattern string) ([]sqlcgen.Question, error)
	ListQuizCandidates(ctx context.Context, arg sqlcgen.ListQuizCandidatesParams) ([]sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int32, error)
}

// NewQuestion carries the validated fields of a question to insert.
type NewQuestion struct {
	Question   string
	Answer     string
	CategoryID int
	Difficulty int
}

// QuestionRepository wraps sqlc queries for the questions table.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]sqlcgen.Question, error) {
	rows, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, classify("list questions", err)
	}
	return rows, nil
}

// Get fetches a single question by id.
func (r *QuestionRepository) Get(ctx context.Context, id int) (sqlcgen.Question, error) {
	pgID, ok := toInt32(id)
	if !ok {
		return sqlcgen.Question{}, classify("get question", ErrNotFound)
	}
	row, err := r.store.GetQuestion(ctx, pgID)
	if err != nil {
		return sqlcgen.Question{}, classify("get question", err)
	}
	return row, nil
}

// ListByCategory returns questions whose category column holds categoryID.
// Unknown categories yield an empty result.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]sqlcgen.Question, error) {
	rows, err := r.store.ListQuestionsByCategory(ctx, CategoryKey(categoryID))
	if err != nil {
		return nil, classify("list questions by category", err)
	}
	return rows, nil
}

// Search matches term as a case-insensitive literal substring of the question
// text. An empty term matches every question.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	rows, err := r.store.SearchQuestions(ctx, escapeLike(term))
	if err != nil {
		return nil, classify("search questions", err)
	}
	return rows, nil
}

// QuizCandidates lists questions not in excluded, limited to categoryID
// unless categoryID is 0.
func (r *QuestionRepository) QuizCandidates(ctx context.Context, excluded []int, categoryID int) ([]sqlcgen.Question, error) {
	params := sqlcgen.ListQuizCandidatesParams{
		// never nil: a NULL array makes "id = ANY(...)" NULL and filters every row
		Excluded: make([]int32, 0, len(excluded)),
	}
	for _, id := range excluded {
		if pgID, ok := toInt32(id); ok {
			params.Excluded = append(params.Excluded, pgID)
		}
	}
	if categoryID != 0 {
		params.Category = CategoryKey(categoryID)
	}
	rows, err := r.store.ListQuizCandidates(ctx, params)
	if err != nil {
		return nil, classify("list quiz candidates", err)
	}
	return rows, nil
}

// Create inserts q and returns the stored row with its assigned id.
func (r *QuestionRepository) Create(ctx context.Context, q NewQuestion) (sqlcgen.Question, error) {
	difficulty, ok := toInt32(q.Difficulty)
	if !ok {
		return sqlcgen.Question{}, classify("insert question", ErrConstraint)
	}
	row, err := r.store.InsertQuestion(ctx, sqlcgen.InsertQuestionParams{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   CategoryKey(q.CategoryID),
		Difficulty: difficulty,
	})
	if err != nil {
		return sqlcgen.Question{}, classify("insert question", err)
	}
	return row, nil
}

// Delete removes the question and returns its id, or ErrNotFound when no row
// matched.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (int, error) {
	pgID, ok := toInt32(id)
	if !ok {
		return 0, classify("delete question", ErrNotFound)
	}
	deleted, err := r.store.DeleteQuestion(ctx, pgID)
	if err != nil {
		return 0, classify("delete question", err)
	}
	return int(deleted), nil
}

// CategoryKey renders a category id the way the questions.category column
// stores it.
func CategoryKey(categoryID int) string {
	return strconv.Itoa(categoryID)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func toInt32(v int) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}
