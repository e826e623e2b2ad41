package positions

import (
	"errors"
	"strings"
)

// ErrNoIdentifier is returned when a vendor export yields no position with an identifier.
var ErrNoIdentifier = errors.New("no position with a security identifier found")

// SchemaError reports the canonical columns missing from a spreadsheet.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}
