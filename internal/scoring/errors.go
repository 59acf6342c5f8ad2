package scoring

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when no scores were supplied at all.
var ErrInvalidInput = errors.New("no scores provided")

// CalculationError reports a rating that could not be folded into a total.
type CalculationError struct {
	Question int
	Err      error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("question %d: %v", e.Question, e.Err)
}

func (e *CalculationError) Unwrap() error { return e.Err }

var (
	errNullRating = errors.New("rating is null")
	errOverflow   = errors.New("total overflows int")
)
