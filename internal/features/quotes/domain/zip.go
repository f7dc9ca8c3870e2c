package domain

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidZip is returned when a postal code cannot be parsed to digits.
var ErrInvalidZip = errors.New("invalid zip code")

// NormalizeZip strips non-digit characters and left-pads the result to the
// canonical 8-digit CEP form. Returns an empty string for empty input.
func NormalizeZip(zip string) string {
	var b strings.Builder
	for _, r := range zip {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	for len(digits) < 8 {
		digits = "0" + digits
	}
	return digits
}

// ZipToInt parses a normalized zip into its numeric form for range
// comparisons and deadline lookups.
func ZipToInt(zip string) (int, error) {
	n, err := strconv.Atoi(zip)
	if err != nil {
		return 0, ErrInvalidZip
	}
	return n, nil
}
