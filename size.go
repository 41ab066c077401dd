package climg

import (
	"fmt"
	"strconv"
	"strings"
)

// SizeSpec is a width or height request: "" means the reference maximum,
// "40" is an absolute count and "50%" is a share of the reference.
type SizeSpec string

// Pixels returns an absolute SizeSpec
func Pixels(n int) SizeSpec {
	return SizeSpec(strconv.Itoa(n))
}

// Percent returns a percentage SizeSpec
func Percent(n int) SizeSpec {
	return SizeSpec(strconv.Itoa(n) + "%")
}

// IsPercent reports whether the size is relative to the reference maximum
func (s SizeSpec) IsPercent() bool {
	return strings.HasSuffix(strings.TrimSpace(string(s)), "%")
}

// ParseSize resolves a SizeSpec against referenceMax.
//
// A decimal fraction is truncated toward zero ("12.7" is 12, "12.5%" is 12%).
// Anything else that is not a non-negative base-10 number fails with ErrInvalidSize.
func ParseSize(value SizeSpec, referenceMax int) (int, error) {
	s := strings.TrimSpace(string(value))
	if s == "" {
		return referenceMax, nil
	}

	if num, ok := strings.CutSuffix(s, "%"); ok {
		pct, err := parseWhole(num)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSize, string(value))
		}
		return referenceMax * pct / 100, nil
	}

	n, err := parseWhole(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, string(value))
	}
	return n, nil
}

// parseWhole parses digits with an optional fractional part and drops the fraction
func parseWhole(s string) (int, error) {
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || !allDigits(whole) || !allDigits(frac) {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(whole)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
