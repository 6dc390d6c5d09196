//go:build unit
// +build unit

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 25, ConvertToInt("25"))
	assert.Equal(t, 3, ConvertToInt(" 3 "))
	assert.Equal(t, 0, ConvertToInt("abc"))
	assert.Equal(t, 0, ConvertToInt(""))
}

func TestParseOptionalTime(t *testing.T) {
	assert.Nil(t, ParseOptionalTime(""))
	assert.Nil(t, ParseOptionalTime("15/03/2025"))

	parsed := ParseOptionalTime("2025-03-15T10:30:00Z")
	require.NotNil(t, parsed)
	assert.True(t, parsed.Equal(time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 72.3, RoundTo(72.345, 1))
	assert.Equal(t, 66.67, RoundTo(200.0/3.0, 2))
	assert.Equal(t, 80.0, RoundTo(79.96, 1))
	assert.Equal(t, -1.5, RoundTo(-1.46, 1))
}
