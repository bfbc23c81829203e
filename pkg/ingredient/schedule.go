package ingredient

import (
	"Meal-Prep-Backend/domain"
	"errors"
)

var ErrScheduleRowOutOfRange = errors.New("schedule row index out of range")

// ScheduleRow is one (label, grams, price, availability) tuple of an
// ingredient's quantity/price schedule. Rows have no identity until saved.
type ScheduleRow struct {
	QuantityValue string
	QuantityGrams int
	Price         float64
	IsAvailable   bool
}

type Schedule []ScheduleRow

// DefaultSchedule seeds the four rows a new ingredient form starts with. It
// is a convenience, not a rule: callers may edit or remove every row.
func DefaultSchedule() Schedule {
	return Schedule{
		{QuantityValue: "100g", QuantityGrams: 100, IsAvailable: true},
		{QuantityValue: "200g", QuantityGrams: 200, IsAvailable: true},
		{QuantityValue: "300g", QuantityGrams: 300, IsAvailable: true},
		{QuantityValue: "400g", QuantityGrams: 400, IsAvailable: true},
	}
}

// AddRow appends an empty, available row.
func (s Schedule) AddRow() Schedule {
	return append(s, ScheduleRow{IsAvailable: true})
}

// UpdateRow mutates a single row in place, leaving the others untouched.
func (s Schedule) UpdateRow(index int, mutate func(*ScheduleRow)) error {
	if index < 0 || index >= len(s) {
		return ErrScheduleRowOutOfRange
	}
	mutate(&s[index])
	return nil
}

// ValidRows is the submission filter: only available rows with a label are
// sent to storage. It runs at the persistence boundary only — a temporarily
// disabled row stays in the editing schedule until the user re-enables it.
func (s Schedule) ValidRows() Schedule {
	var out Schedule
	for _, row := range s {
		if row.IsAvailable && row.QuantityValue != "" {
			out = append(out, row)
		}
	}
	return out
}

func ScheduleFromRequests(reqs []domain.QuantityOptionRequest) Schedule {
	out := make(Schedule, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, ScheduleRow{
			QuantityValue: req.QuantityValue,
			QuantityGrams: req.QuantityGrams,
			Price:         req.Price,
			IsAvailable:   req.IsAvailable,
		})
	}
	return out
}
