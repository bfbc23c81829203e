package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule()

	require.Len(t, s, 4)
	labels := []string{"100g", "200g", "300g", "400g"}
	grams := []int{100, 200, 300, 400}
	for i, row := range s {
		assert.Equal(t, labels[i], row.QuantityValue)
		assert.Equal(t, grams[i], row.QuantityGrams)
		assert.True(t, row.IsAvailable)
		assert.Zero(t, row.Price)
	}
}

func TestScheduleAddRow(t *testing.T) {
	s := DefaultSchedule().AddRow()

	require.Len(t, s, 5)
	assert.Empty(t, s[4].QuantityValue)
	assert.True(t, s[4].IsAvailable)
}

func TestScheduleUpdateRow(t *testing.T) {
	s := DefaultSchedule()

	err := s.UpdateRow(1, func(row *ScheduleRow) {
		row.Price = 12.5
		row.IsAvailable = false
	})
	require.NoError(t, err)

	assert.Equal(t, 12.5, s[1].Price)
	assert.False(t, s[1].IsAvailable)

	// neighbours untouched
	assert.True(t, s[0].IsAvailable)
	assert.True(t, s[2].IsAvailable)
}

func TestScheduleUpdateRowOutOfRange(t *testing.T) {
	s := DefaultSchedule()

	assert.ErrorIs(t, s.UpdateRow(-1, func(*ScheduleRow) {}), ErrScheduleRowOutOfRange)
	assert.ErrorIs(t, s.UpdateRow(4, func(*ScheduleRow) {}), ErrScheduleRowOutOfRange)
}

func TestScheduleValidRows(t *testing.T) {
	s := Schedule{
		{QuantityValue: "", IsAvailable: true, Price: 5},
		{QuantityValue: "200g", IsAvailable: false, Price: 10},
		{QuantityValue: "300g", IsAvailable: true, Price: 15},
	}

	valid := s.ValidRows()

	require.Len(t, valid, 1)
	assert.Equal(t, "300g", valid[0].QuantityValue)
	assert.Equal(t, 15.0, valid[0].Price)
}

func TestScheduleValidRowsKeepsEditingState(t *testing.T) {
	s := Schedule{
		{QuantityValue: "100g", IsAvailable: false},
		{QuantityValue: "200g", IsAvailable: true},
	}

	_ = s.ValidRows()

	// The filter must not mutate the schedule being edited.
	require.Len(t, s, 2)
	assert.Equal(t, "100g", s[0].QuantityValue)
	assert.False(t, s[0].IsAvailable)
}
