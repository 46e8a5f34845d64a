// Package molad implements the integer chalakim arithmetic underlying the
// Hebrew calendar's molad (mean lunar conjunction) computation and the
// Rosh Hashana postponement rules.
package molad

import "github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"

// Chalakim-based time units. 1 hour = 1080 chalakim.
const (
	ChalakimPerMinute = 1080 / 60
	ChalakimPerHour   = 1080
	ChalakimPerDay    = 1080 * 24

	// ChalakimBetweenMolad is the length of a synodic month: 29 days,
	// 12 hours, 793 chalakim.
	ChalakimBetweenMolad uint64 = 29*24*ChalakimPerHour + 12*ChalakimPerHour + 793
)

// FirstMolad is the chalakim offset of the first molad (Tishrei year 1)
// relative to Epoch.
const FirstMolad uint64 = 31524

// FirstYear is the first Hebrew year counted since Epoch.
const FirstYear uint32 = 1

// DaysBetweenRHAndEpoch is the civil-day gap between Epoch and FirstRH.
const DaysBetweenRHAndEpoch int64 = 2

// Epoch returns the conceptual day-zero civil instant: -3760-09-05 18:00.
func Epoch() civil.Date {
	d, err := civil.FromYMD(-3760, 9, 5)
	if err != nil {
		panic(err)
	}
	return d.AndHMS(18, 0, 0)
}

// FirstRH returns the civil instant of the first Rosh Hashana since Epoch:
// -3760-09-07 18:00.
func FirstRH() civil.Date {
	d, err := civil.FromYMD(-3760, 9, 7)
	if err != nil {
		panic(err)
	}
	return d.AndHMS(18, 0, 0)
}

// leapYears is the fixed 19-year Metonic leap-year pattern, indexed by
// (year - FirstYear) mod 19.
var leapYears = [19]bool{
	false, false, true, false, false, true, false, true, false, false,
	true, false, false, true, false, false, true, false, true,
}

// AmntChalakimPerCycle is the total chalakim elapsed across one full
// 19-year cycle (7 leap years of 13 months, 12 plain years of 12 months).
const AmntChalakimPerCycle uint64 = (7*13 + 12*12) * ChalakimBetweenMolad

// YearSched is the 6x14 month-length table, indexed by return_year_sched(len)
// then by HebrewMonth ordinal. Row order: 353,354,355,383,384,385 days.
var YearSched = [6][14]uint8{
	{30, 29, 29, 29, 30, 29, 0, 0, 30, 29, 30, 29, 30, 29},
	{30, 29, 30, 29, 30, 29, 0, 0, 30, 29, 30, 29, 30, 29},
	{30, 30, 30, 29, 30, 29, 0, 0, 30, 29, 30, 29, 30, 29},
	{30, 29, 29, 29, 30, 0, 30, 29, 30, 29, 30, 29, 30, 29},
	{30, 29, 30, 29, 30, 0, 30, 29, 30, 29, 30, 29, 30, 29},
	{30, 30, 30, 29, 30, 0, 30, 29, 30, 29, 30, 29, 30, 29},
}

// ReturnYearSched maps a year length to its row index in YearSched. Panics
// on a length that cannot occur — a programming error, never a user input.
func ReturnYearSched(days uint32) int {
	switch days {
	case 353:
		return 0
	case 354:
		return 1
	case 355:
		return 2
	case 383:
		return 3
	case 384:
		return 4
	case 385:
		return 5
	default:
		panic("molad: impossible year length")
	}
}

// IsLeapYearInCycle reports whether the year-in-cycle index (0..18) names a
// leap year.
func IsLeapYearInCycle(yearInCycle uint8) bool {
	return leapYears[yearInCycle]
}

// MonthsPerYear returns 13 for a leap year, 12 otherwise.
func MonthsPerYear(year uint32) uint8 {
	yearInCycle := uint8((year - FirstYear) % 19)
	if leapYears[yearInCycle] {
		return 13
	}
	return 12
}
