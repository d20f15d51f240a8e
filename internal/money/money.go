// Package money handles currency amounts as integer cents.
//
// User input arrives as decimal strings ("150", "12.50") and the API
// emits plain decimal numbers; internally every amount is a Cents value
// so arithmetic stays exact. Formatting into locale currency strings is
// the presentation layer's job.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPattern accepts a non-negative decimal with at most two decimal places.
var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

// Cents is a currency amount in integer cents. It marshals to and from
// JSON as a decimal number of currency units.
type Cents int64

// Parse converts a user-supplied decimal string into Cents.
// The input must be a non-negative number with at most two decimal places.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid amount %q: must be a non-negative number with at most two decimal places", s)
	}

	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	cents := units * 100
	if frac != "" {
		// Pad "5" to "50" so ".5" means fifty cents.
		if len(frac) == 1 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		cents += f
	}
	return Cents(cents), nil
}

// IsValid reports whether s matches the accepted amount pattern.
func IsValid(s string) bool {
	return amountPattern.MatchString(strings.TrimSpace(s))
}

// FromFloat converts a decimal number of currency units into Cents,
// rounding to the nearest cent. Used at the snapshot import boundary.
func FromFloat(f float64) Cents {
	return Cents(math.Round(f * 100))
}

// Float returns the amount as a decimal number of currency units.
func (c Cents) Float() float64 {
	return float64(c) / 100
}

// String formats the amount as a plain decimal, e.g. "1234.56".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON emits the amount as a decimal number.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(c.Float(), 'f', 2, 64)), nil
}

// UnmarshalJSON accepts either a decimal number or a decimal string,
// rounding to the nearest cent. Snapshot blobs from older exports carry
// plain JSON numbers.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*c = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", string(data), err)
	}
	*c = FromFloat(f)
	return nil
}

var _ json.Marshaler = Cents(0)
var _ json.Unmarshaler = (*Cents)(nil)
