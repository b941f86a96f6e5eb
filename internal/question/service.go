package question

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Monirah1998/trivia-udacity/internal/db/repository"
	sqlcgen "github.com/Monirah1998/trivia-udacity/internal/db/sqlc"
)

// Service answers question and category lookups on top of the repositories.
type Service struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
	cache      CategoryCache
	logger     zerolog.Logger
}

type ServiceOptions struct {
	// Cache is optional; nil disables category caching.
	Cache CategoryCache
}

func NewService(questions *repository.QuestionRepository, categories *repository.CategoryRepository, logger zerolog.Logger, opts ServiceOptions) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      opts.Cache,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// Categories lists every category, consulting the cache first when one is
// configured. Cache failures fall through to the store.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, translate(err)
	}
	categories := make([]Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, formatCategory(row))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// Category fetches a single category by id.
func (s *Service) Category(ctx context.Context, id int) (Category, error) {
	row, err := s.categories.Get(ctx, id)
	if err != nil {
		return Category{}, translate(err)
	}
	return formatCategory(row), nil
}

// CategoryTypes maps category id (as a string) to its type label.
func (s *Service) CategoryTypes(ctx context.Context) (map[string]string, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	types := make(map[string]string, len(categories))
	for _, c := range categories {
		types[strconv.Itoa(c.ID)] = c.Type
	}
	return types, nil
}

// List returns the requested page of all questions. A page past the end of
// the data, other than page 1, is ErrNotFound.
func (s *Service) List(ctx context.Context, page int) (Page, error) {
	rows, err := s.questions.List(ctx)
	if err != nil {
		return Page{}, translate(err)
	}
	return pageOf(rows, page)
}

// Get fetches one question.
func (s *Service) Get(ctx context.Context, id int) (Question, error) {
	row, err := s.questions.Get(ctx, id)
	if err != nil {
		return Question{}, translate(err)
	}
	return Format(row), nil
}

// ByCategory pages through the questions filed under categoryID. The
// category is not required to exist.
func (s *Service) ByCategory(ctx context.Context, categoryID, page int) (Page, error) {
	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return Page{}, translate(err)
	}
	return pageOf(rows, page)
}

// Search returns every question whose text contains term, ignoring case.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, translate(err)
	}
	return FormatAll(rows), nil
}

// Create validates req and stores it, returning the new id.
func (s *Service) Create(ctx context.Context, req CreateRequest) (int, error) {
	newQuestion, err := validateCreate(req)
	if err != nil {
		return 0, err
	}
	row, err := s.questions.Create(ctx, newQuestion)
	if err != nil {
		return 0, translate(err)
	}
	s.logger.Info().Int32("question_id", row.ID).Str("category", row.Category).Msg("question created")
	return int(row.ID), nil
}

// Delete removes a question and returns its id.
func (s *Service) Delete(ctx context.Context, id int) (int, error) {
	deleted, err := s.questions.Delete(ctx, id)
	if err != nil {
		return 0, translate(err)
	}
	s.logger.Info().Int("question_id", deleted).Msg("question deleted")
	return deleted, nil
}

// Candidates lists questions not in excluded, restricted to categoryID
// unless it is 0.
func (s *Service) Candidates(ctx context.Context, excluded []int, categoryID int) ([]Question, error) {
	rows, err := s.questions.QuizCandidates(ctx, excluded, categoryID)
	if err != nil {
		return nil, translate(err)
	}
	return FormatAll(rows), nil
}

func validateCreate(req CreateRequest) (repository.NewQuestion, error) {
	text := strings.TrimSpace(req.Question)
	if text == "" {
		return repository.NewQuestion{}, invalid("question is required")
	}
	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		return repository.NewQuestion{}, invalid("answer is required")
	}
	category, ok := req.Category.Int()
	if !ok || category < 1 {
		return repository.NewQuestion{}, invalid("category must be a positive integer")
	}
	difficulty, ok := req.Difficulty.Int()
	if !ok || difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return repository.NewQuestion{}, invalid("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)
	}
	return repository.NewQuestion{
		Question:   text,
		Answer:     answer,
		CategoryID: category,
		Difficulty: difficulty,
	}, nil
}

func pageOf(rows []sqlcgen.Question, page int) (Page, error) {
	current := Paginate(rows, page)
	if outOfRange(page, len(current)) {
		return Page{}, invalidPage(page)
	}
	return Page{Questions: FormatAll(current), Total: len(rows)}, nil
}

// Format converts a stored row into its client representation.
func Format(row sqlcgen.Question) Question {
	return Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Difficulty: int(row.Difficulty),
		Category:   row.Category,
	}
}

// FormatAll formats rows, always returning a non-nil slice.
func FormatAll(rows []sqlcgen.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, Format(row))
	}
	return out
}

func formatCategory(row sqlcgen.Category) Category {
	return Category{ID: int(row.ID), Type: row.Type}
}
