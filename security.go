package positions

import (
	"fmt"
	"regexp"
	"strings"
)

// identifierRegex is the shape expected from a security identifier: 2 letters, 10 alphanumeric.
var identifierRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{10}$`)

// isinRegex checks for the full ISIN structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// ID is the security identifier of a position, usually an ISIN.
//
// The shape is expected but never enforced: identifiers found in exports pass through as
// opaque strings, and are only compared for equality when joining reference data.
type ID string

// NewID trims an identifier read from a spreadsheet.
func NewID(s string) ID { return ID(strings.TrimSpace(s)) }

// LooksLikeIdentifier reports whether 's' has the shape of a security identifier.
func LooksLikeIdentifier(s string) bool {
	return identifierRegex.MatchString(strings.TrimSpace(s))
}

// Check returns nil if the identifier is a valid ISIN, or a descriptive error.
func (id ID) Check() error {
	return ValidateISIN(string(id))
}

// String implements the fmt.Stringer interface.
func (id ID) String() string {
	return string(id)
}

// ValidateISIN returns nil if 'isin' is a well formed ISIN with a correct Luhn check digit.
func ValidateISIN(isin string) error {
	if n := len(isin); n != 12 {
		return fmt.Errorf("invalid length: must be 12 characters, got %d", n)
	}
	if !isinRegex.MatchString(isin) {
		return fmt.Errorf("invalid format: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit")
	}

	// Letters expand to two digits, A=10 to Z=35.
	var digits []int
	for _, r := range isin[:11] {
		if r >= 'A' && r <= 'Z' {
			v := int(r-'A') + 10
			digits = append(digits, v/10, v%10)
			continue
		}
		digits = append(digits, int(r-'0'))
	}

	sum := 0
	for i := range digits {
		d := digits[len(digits)-1-i]
		if i%2 == 0 {
			d *= 2
		}
		sum += d/10 + d%10
	}

	want := (10 - sum%10) % 10
	if got := int(isin[11] - '0'); got != want {
		return fmt.Errorf("invalid check digit: expected %d, got %d", want, got)
	}
	return nil
}
