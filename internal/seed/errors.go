package seed

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bittrack/internal/domain"
)

// ValidationError aggregates every problem Validate found in a seed file.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "seed validation failed (%d errors):", len(e.Errs))
	for _, err := range e.Errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() []error {
	return e.Errs
}

// Build validates s and converts it to a dataset in one step.
func Build(s *Schema) (*domain.Dataset, error) {
	if errs := Validate(s); len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}
	return Convert(s)
}
