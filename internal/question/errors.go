package question

import (
	"errors"
	"fmt"

	"github.com/Monirah1998/trivia-udacity/internal/db/repository"
)

var (
	// ErrNotFound means the addressed question, category or page does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput means the request was well-formed JSON but its values
	// cannot be stored or used.
	ErrInvalidInput = errors.New("invalid input")
)

// translate lifts repository sentinels into the service taxonomy. Anything
// else stays a store failure.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, repository.ErrConstraint):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func invalidPage(page int) error {
	return fmt.Errorf("%w: page %d is past the last page", ErrNotFound, page)
}
