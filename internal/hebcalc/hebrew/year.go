package hebrew

import (
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/molad"
)

// MinYear is the public lower bound on Hebrew years this library will
// construct. Years below this are rejected as ErrYearTooSmall even though
// the underlying arithmetic is defined down to molad.FirstYear.
const MinYear uint32 = 3764

// Year is an immutable, cheaply-constructed view of a Hebrew year's shape:
// its Rosh Hashana weekday, month-length schedule, leap status and molad.
type Year struct {
	year            uint32
	daysSinceEpoch  uint32 // Rosh Hashana, in days since molad.Epoch()
	dowRH           civil.Weekday
	dowNextRH       civil.Weekday
	monthsPerYear   uint8
	sched           [14]uint8
	yearLen         uint32
	moladOfYearRaw  uint64 // molad.MoladOfYear(year), without FirstMolad added
}

// NewYear constructs the Year for the given Hebrew year number.
func NewYear(year uint32) (Year, error) {
	if year < MinYear {
		return Year{}, ErrYearTooSmall
	}

	daysRH, dowRH, moladChalakim := molad.RoshHashana(year)
	daysNextRH, dowNextRH, _ := molad.RoshHashana(year + 1)

	yearLen := daysNextRH - daysRH
	row := molad.ReturnYearSched(yearLen)

	y := Year{
		year:           year,
		daysSinceEpoch: daysRH,
		dowRH:          dowRH,
		dowNextRH:      dowNextRH,
		monthsPerYear:  molad.MonthsPerYear(year),
		sched:          molad.YearSched[row],
		yearLen:        yearLen,
		moladOfYearRaw: moladChalakim,
	}
	return y, nil
}

// Number returns the Hebrew year number.
func (y Year) Number() uint32 { return y.year }

// RoshHashanaWeekday returns the weekday 1 Tishrei falls on.
func (y Year) RoshHashanaWeekday() civil.Weekday { return y.dowRH }

// NextRoshHashanaWeekday returns the weekday of the following year's 1 Tishrei.
func (y Year) NextRoshHashanaWeekday() civil.Weekday { return y.dowNextRH }

// IsLeap reports whether this year has 13 months.
func (y Year) IsLeap() bool { return y.monthsPerYear == 13 }

// MonthsPerYear returns 12 or 13.
func (y Year) MonthsPerYear() uint8 { return y.monthsPerYear }

// Length returns the year length in days (one of 353,354,355,383,384,385).
func (y Year) Length() uint32 { return y.yearLen }

// DaysSinceEpoch returns Rosh Hashana's offset in days since molad.Epoch().
func (y Year) DaysSinceEpoch() uint32 { return y.daysSinceEpoch }

// Schedule returns the 14-slot month-length table for this year.
func (y Year) Schedule() [14]uint8 { return y.sched }

// MonthLength returns the number of days in the given month slot for this year.
func (y Year) MonthLength(m Month) uint8 { return y.sched[m] }

// Shape classifies the year by (RH weekday, Cheshvan/Kislev pattern, leap
// status) into one of the 14 YearShape values.
func (y Year) Shape() YearShape {
	return classifyShape(y)
}

// Molad returns the molad (mean conjunction) of the given month as a
// chalakim-since-Epoch scalar.
func (y Year) Molad(m Month) (Molad, error) {
	if _, err := y.monthIndex(m); err != nil {
		return 0, err
	}
	// Count only the months this year has (non-zero schedule slots), so
	// the index is the month's position within the year.
	idx := 0
	for i := Tishrei; i < m; i++ {
		if y.sched[i] != 0 {
			idx++
		}
	}
	return Molad(molad.MoladOfMonth(y.moladOfYearRaw, idx)), nil
}

// monthIndex validates that m is legal for this year's leap status and
// returns its zero-based position within the 14-slot schedule.
func (y Year) monthIndex(m Month) (int, error) {
	if !y.IsLeap() && (m == Adar1 || m == Adar2) {
		return 0, ErrIsNotLeapYear
	}
	if y.IsLeap() && m == Adar {
		return 0, ErrIsLeapYear
	}
	return int(m), nil
}

// AndMonthDay builds a HebrewDate in this year, validating the day against
// the month's schedule length and the month against leap status.
func (y Year) AndMonthDay(m Month, day uint8) (Date, error) {
	if _, err := y.monthIndex(m); err != nil {
		return Date{}, err
	}
	limit := y.sched[m]
	if day < 1 || day > limit {
		return Date{}, &ErrTooManyDaysInMonth{Limit: limit}
	}
	return Date{year: y, month: m, day: day}, nil
}

// daysSumBefore returns the cumulative day count of all schedule slots strictly
// before the given month.
func (y Year) daysSumBefore(m Month) uint32 {
	var total uint32
	if m == Tishrei {
		return 0
	}
	for i := Tishrei; i < m; i++ {
		total += uint32(y.sched[i])
	}
	return total
}
