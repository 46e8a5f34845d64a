package molad

import "github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"

// MoladOfYear returns the chalakim elapsed since the first molad (Tishrei of
// FirstYear) through Tishrei of the given year.
func MoladOfYear(year uint32) uint64 {
	amntOfCycles := uint64((year - FirstYear) / 19)
	amntChalakim := AmntChalakimPerCycle * amntOfCycles

	curYearInCycle := uint8((year - FirstYear) % 19)
	for i := uint8(0); i < curYearInCycle; i++ {
		if IsLeapYearInCycle(i) {
			amntChalakim += 13 * ChalakimBetweenMolad
		} else {
			amntChalakim += 12 * ChalakimBetweenMolad
		}
	}
	return amntChalakim
}

// RoshHashana computes, for a Hebrew year, the day count since Epoch of its
// Rosh Hashana, the weekday it falls on, and the molad-of-year chalakim used
// to derive it. It applies the four postponement rules (Molad Zaken, Lo ADU
// Rosh, GaTaRaD, BeTuTaKPaT) in order.
func RoshHashana(year uint32) (days uint32, dow civil.Weekday, moladOfYearChalakim uint64) {
	moladOfYearChalakim = MoladOfYear(year)
	chalakimSinceEpoch := moladOfYearChalakim + FirstMolad

	amntDays := uint32(chalakimSinceEpoch / uint64(ChalakimPerHour*24))
	rem := uint16(chalakimSinceEpoch % uint64(ChalakimPerHour*24))
	regPostpone := false

	// Molad Zaken: molad in the afternoon (after midday + 6h = 18h) postpones RH.
	if rem > 18*ChalakimPerHour {
		amntDays++
		regPostpone = true
	}

	dow = civil.Weekday(amntDays % 7)
	// Lo ADU Rosh: RH may never fall on Sunday, Wednesday, or Friday.
	if dow == civil.Sunday || dow == civil.Wednesday || dow == civil.Friday {
		amntDays++
		regPostpone = true
	}

	// GaTaRaD, only when no prior postponement applied.
	if !regPostpone && dow == civil.Tuesday && rem > 9*ChalakimPerHour+204 && MonthsPerYear(year) == 12 {
		amntDays += 2
	}

	// BeTuTaKPaT, only when no prior postponement applied.
	if !regPostpone && year > FirstYear && MonthsPerYear(year-1) == 13 &&
		dow == civil.Monday && rem > 12*ChalakimPerHour+3*ChalakimPerHour+589 {
		amntDays++
	}

	dow = civil.Weekday(amntDays % 7)
	return amntDays, dow, moladOfYearChalakim
}

// DayOfLastRH returns the Hebrew year whose Rosh Hashana is the most recent
// one at or before the given day count since Epoch.
func DayOfLastRH(daysSinceEpoch uint32) uint32 {
	curYear := FirstYear + uint32(19*uint64(daysSinceEpoch)/6956)
	for {
		days, _, _ := RoshHashana(curYear + 1)
		if days > daysSinceEpoch {
			break
		}
		curYear++
	}
	return curYear
}

// MoladOfMonth returns the chalakim-since-Epoch of the molad for the given
// zero-based month-within-year index (Tishrei-first ordering).
func MoladOfMonth(moladOfYearChalakim uint64, monthIndex int) uint64 {
	return moladOfYearChalakim + uint64(monthIndex)*ChalakimBetweenMolad + FirstMolad
}

// ToCivil converts a chalakim-since-Epoch scalar into a civil instant by
// carrying the full chalakim offset onto Epoch (which itself sits at 18:00).
func ToCivil(chalakimSinceEpoch uint64) civil.Date {
	return Epoch().AddChalakim(int(chalakimSinceEpoch))
}
