package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Monirah1998/trivia-udacity/internal/metrics"
	"github.com/Monirah1998/trivia-udacity/internal/question"
)

// AllCategories is the category selector meaning "draw from every category".
const AllCategories = 0

// ErrInvalidSelector is returned when the request cannot be turned into a
// candidate query.
var ErrInvalidSelector = errors.New("invalid quiz selector")

// CategoryRef is the quiz_category object sent by clients. Only the id is
// used; the type label is informational.
type CategoryRef struct {
	ID question.FlexInt `json:"id"`
}

// Request is the POST /quizzes body.
type Request struct {
	PreviousQuestions []question.FlexInt `json:"previous_questions"`
	QuizCategory      *CategoryRef       `json:"quiz_category"`
}

type candidateSource interface {
	Candidates(ctx context.Context, excluded []int, categoryID int) ([]question.Question, error)
}

// Selector draws one unseen question per call. It keeps no state between
// calls: the caller sends back every id it has already been given.
type Selector struct {
	source candidateSource
	pick   func(n int) int
}

// NewSelector builds a Selector drawing uniformly at random.
func NewSelector(source candidateSource) *Selector {
	return &Selector{source: source, pick: rand.IntN}
}

// Next returns a random candidate, or nil when every eligible question has
// already been asked.
func (s *Selector) Next(ctx context.Context, req Request) (*question.Question, error) {
	previous, categoryID, err := parse(req)
	if err != nil {
		return nil, err
	}

	candidates, err := s.source.Candidates(ctx, previous, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load quiz candidates: %w", err)
	}
	if len(candidates) == 0 {
		metrics.QuizDraws.WithLabelValues(metrics.OutcomeExhausted).Inc()
		return nil, nil
	}

	chosen := candidates[s.pick(len(candidates))]
	metrics.QuizDraws.WithLabelValues(metrics.OutcomeQuestion).Inc()
	return &chosen, nil
}

func parse(req Request) ([]int, int, error) {
	if req.QuizCategory == nil {
		return nil, 0, fmt.Errorf("%w: quiz_category is required", ErrInvalidSelector)
	}
	categoryID, ok := req.QuizCategory.ID.Int()
	if !ok || categoryID < 0 {
		return nil, 0, fmt.Errorf("%w: quiz_category.id must be a non-negative integer", ErrInvalidSelector)
	}

	previous := make([]int, 0, len(req.PreviousQuestions))
	for _, raw := range req.PreviousQuestions {
		id, ok := raw.Int()
		if !ok {
			return nil, 0, fmt.Errorf("%w: previous_questions must hold integer ids", ErrInvalidSelector)
		}
		previous = append(previous, id)
	}
	return previous, categoryID, nil
}
