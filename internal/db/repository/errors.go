package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound reports that no row matched the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint reports that Postgres rejected the data itself
	// (integrity violation or data exception), as opposed to being unreachable.
	ErrConstraint = errors.New("constraint violation")
)

// classify maps driver errors onto the repository sentinels. Errors that are
// neither are wrapped with op and returned as-is for the caller to treat as a
// store failure.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case "22", "23":
			return fmt.Errorf("%s: %w: %s", op, ErrConstraint, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
