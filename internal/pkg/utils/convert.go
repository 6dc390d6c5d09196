package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ConvertToInt parses s as a base 10 integer and returns 0 when it is not one.
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseOptionalTime parses an RFC3339 timestamp, returning nil for an empty
// or malformed value.
func ParseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// RoundTo rounds v to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
