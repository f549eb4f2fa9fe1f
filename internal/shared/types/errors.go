package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format (use .csv, .txt or .xlsx)")
	ErrMissingDataset    = errors.New("both delivery and region files are required")
	ErrColumnNotFound    = errors.New("could not identify the municipality/city column in the region file")
	ErrEmptySource       = errors.New("source location is empty")
	ErrEmptyFile         = errors.New("file has no data")
)

// ColumnNotFoundError informa as colunas encontradas quando a coluna de município não é identificada.
type ColumnNotFoundError struct {
	Columns []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%s; columns found: [%s]", ErrColumnNotFound.Error(), strings.Join(e.Columns, ", "))
}

// Is permite errors.Is(err, ErrColumnNotFound).
func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}
