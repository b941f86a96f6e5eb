package repository

import (
	"context"

	sqlcgen "github.com/Monirah1998/trivia-udacity/internal/db/sqlc"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]sqlcgen.Category, error)
	GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error)
}

// CategoryRepository exposes the read-only categories table.
type CategoryRepository struct {
	store categoryStore
}

// NewCategoryRepository constructs a new category repository.
func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]sqlcgen.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, classify("list categories", err)
	}
	return rows, nil
}

// Get fetches one category.
func (r *CategoryRepository) Get(ctx context.Context, id int) (sqlcgen.Category, error) {
	pgID, ok := toInt32(id)
	if !ok {
		return sqlcgen.Category{}, classify("get category", ErrNotFound)
	}
	row, err := r.store.GetCategory(ctx, pgID)
	if err != nil {
		return sqlcgen.Category{}, classify("get category", err)
	}
	return row, nil
}
