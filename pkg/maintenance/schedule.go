package maintenance

import (
	"Furnicare-Backend/domain"
	"time"
)

const (
	CycleUnitDays   = "days"
	CycleUnitWeeks  = "weeks"
	CycleUnitMonths = "months"
	CycleUnitYears  = "years"
)

// CalculateNextDueDate advances performedAt by cycleValue units of
// cycleUnit. Month and year additions clamp to the last valid day of the
// target month (Jan 31 + 1 month = Feb 28), rather than rolling over the
// way time.AddDate does.
func CalculateNextDueDate(performedAt time.Time, cycleValue int, cycleUnit string) (time.Time, error) {
	if cycleValue < 1 {
		return time.Time{}, domain.ErrInvalidCycleValue
	}

	switch cycleUnit {
	case CycleUnitDays:
		return performedAt.AddDate(0, 0, cycleValue), nil
	case CycleUnitWeeks:
		return performedAt.AddDate(0, 0, cycleValue*7), nil
	case CycleUnitMonths:
		return addMonthsClamped(performedAt, cycleValue), nil
	case CycleUnitYears:
		return addMonthsClamped(performedAt, cycleValue*12), nil
	default:
		return time.Time{}, domain.ErrUnsupportedCycleUnit
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	total := int(month) - 1 + months
	year += total / 12
	month = time.Month(total%12 + 1)

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
