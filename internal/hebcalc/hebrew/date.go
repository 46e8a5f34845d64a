package hebrew

import (
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/molad"
)

// Date holds a specific Hebrew date. It carries a copy of its Year so that
// ToCivil and Weekday are O(1) without an external Year lookup — constructing
// a Year is cheap, so the duplication is an acceptable tradeoff (see
// DESIGN.md for the alternative considered: storing only the year number).
type Date struct {
	year  Year
	month Month
	day   uint8
}

// FromYMD is a convenience wrapper constructing the Year and the date in one
// call.
func FromYMD(year uint32, month Month, day uint8) (Date, error) {
	y, err := NewYear(year)
	if err != nil {
		return Date{}, err
	}
	return y.AndMonthDay(month, day)
}

// Year returns the date's containing Hebrew year view.
func (d Date) Year() Year { return d.year }

// YearNumber returns the Hebrew year number.
func (d Date) YearNumber() uint32 { return d.year.Number() }

// Month returns the Hebrew month.
func (d Date) Month() Month { return d.month }

// Day returns the day of month (1-based).
func (d Date) Day() uint8 { return d.day }

// daysSinceRH returns the zero-based offset of this date within its year,
// i.e. the number of days since (and including) Rosh Hashana minus one.
func (d Date) daysSinceRH() uint32 {
	return d.year.daysSumBefore(d.month) + uint32(d.day) - 1
}

// Weekday computes the day of week this date falls on.
func (d Date) Weekday() civil.Weekday {
	total := uint64(d.year.DaysSinceEpoch()) + uint64(d.daysSinceRH())
	return civil.Weekday(total % 7)
}

// ToCivil converts this Hebrew date to its civil instant, conventionally
// returned at 18:00 on the resulting civil day (the sundown-cutoff
// convention: a Hebrew day begins at the previous civil evening).
func (d Date) ToCivil() civil.Date {
	totalDays := int64(d.year.DaysSinceEpoch()) + int64(d.daysSinceRH())
	return molad.Epoch().AddDays(totalDays)
}

// Compare returns -1, 0, or 1 according to whether d sorts before, equal to,
// or after other.
func (d Date) Compare(other Date) int {
	if d.year.Number() != other.year.Number() {
		if d.year.Number() < other.year.Number() {
			return -1
		}
		return 1
	}
	if d.month != other.month {
		if d.month < other.month {
			return -1
		}
		return 1
	}
	if d.day != other.day {
		if d.day < other.day {
			return -1
		}
		return 1
	}
	return 0
}

// Equal reports whether two Hebrew dates denote the same day.
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// Before reports whether d sorts strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// Sub returns the signed chalakim duration between two Hebrew dates,
// computed from each date's cumulative day offset since Epoch (at the
// conventional 18:00 instant, i.e. a whole multiple of a day's chalakim).
func (d Date) Sub(other Date) int64 {
	a := int64(d.year.DaysSinceEpoch()) + int64(d.daysSinceRH())
	b := int64(other.year.DaysSinceEpoch()) + int64(other.daysSinceRH())
	return (a - b) * molad.ChalakimPerDay
}

// FromCivil converts a civil instant to its Hebrew date, honoring the 18:00
// day-boundary cutoff (a civil time at or after 18:00 belongs to the next
// Hebrew day, which civil.Date callers express by setting hour=18 on the
// target evening).
func FromCivil(c civil.Date) (Date, error) {
	epochBound := molad.FirstRH().AddDays(2 + 365)
	if c.Before(epochBound) {
		return Date{}, ErrYearTooSmall
	}

	daysSinceEpoch := c.Sub(molad.Epoch())
	// Before 18:00 the instant still belongs to the Hebrew day that began at
	// 18:00 on the previous civil date.
	if c.Hour() < 18 {
		daysSinceEpoch--
	}
	yearNum := molad.DayOfLastRH(uint32(daysSinceEpoch))
	y, err := NewYear(yearNum)
	if err != nil {
		return Date{}, err
	}
	return y.dateFromDaysSinceEpoch(uint32(daysSinceEpoch))
}

// DateAtOffset resolves a zero-based day offset from this year's Rosh
// Hashana into the month/day it falls on.
func (y Year) DateAtOffset(offsetFromRH uint32) (Date, error) {
	return y.dateFromDaysSinceEpoch(y.daysSinceEpoch + offsetFromRH)
}

// dateFromDaysSinceEpoch resolves a day offset since Epoch (known to fall
// within this year) into a month/day pair by walking the schedule.
func (y Year) dateFromDaysSinceEpoch(daysSinceEpoch uint32) (Date, error) {
	remaining := int64(daysSinceEpoch) - int64(y.daysSinceEpoch)
	for m := Tishrei; m <= Elul; m++ {
		length := int64(y.sched[m])
		if length == 0 {
			continue
		}
		if remaining < length {
			return Date{year: y, month: m, day: uint8(remaining + 1)}, nil
		}
		remaining -= length
	}
	return Date{}, ErrTooManyHebrewMonths
}
