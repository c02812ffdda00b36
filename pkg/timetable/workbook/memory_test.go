package workbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	s := NewMemorySheet("9월").
		Set(1, 1, "a").
		Set(1, 2, 3).
		Set(2, 1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s.Set(1, 1, nil)

	assert.True(t, s.Cell(1, 1).IsEmpty())
	assert.Equal(t, NumberValue(3), s.Cell(1, 2))
	assert.Equal(t, Date, s.Cell(2, 1).Kind)

	wb := NewMemory(NewMemorySheet("정보"), s)
	wb.Add(NewMemorySheet("정보"))
	assert.Equal(t, []string{"정보", "9월"}, wb.SheetNames())

	got, ok := wb.Sheet("9월")
	require.True(t, ok)
	assert.Equal(t, "9월", got.Name())

	missing, ok := wb.Sheet("10월")
	assert.False(t, ok)
	assert.Nil(t, missing)
	assert.NoError(t, wb.Close())
}

func TestValueOf(t *testing.T) {
	assert.Equal(t, Empty, ValueOf("").Kind)
	assert.Equal(t, NumberValue(4), ValueOf(int64(4)))
	assert.Equal(t, TextValue("true"), ValueOf(true))
	assert.Equal(t, "number", Number.String())
}
