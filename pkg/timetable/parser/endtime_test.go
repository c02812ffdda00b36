package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEndTime(t *testing.T) {
	tests := []struct {
		start string
		hours int
		want  string
	}{
		{"09:00", 8, "18:00"},
		{"14:00", 2, "16:00"},
		{"09:00", 4, "13:00"},
		{"10:00", 4, "15:00"},
		{"12:30", 1, "14:30"},
		{"13:00", 2, "15:00"},
		{"09:00", 0, "09:00"},
		{"20:00", 6, "02:00"},
	}

	for _, tt := range tests {
		got, err := CalculateEndTime(tt.start, tt.hours)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s + %dh", tt.start, tt.hours)
	}
}

func TestCalculateEndTimeInvalid(t *testing.T) {
	for _, in := range []string{"", "9:00", "24:00", "09:60", "nine"} {
		_, err := CalculateEndTime(in, 2)
		assert.ErrorIs(t, err, ErrInvalidTime, in)
	}
}
