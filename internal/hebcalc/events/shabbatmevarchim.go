package events

import (
	"fmt"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// ShabbatMevarchim names the Shabbat on which the coming month's molad is
// announced. It carries the announced month and its molad instant, since
// unlike every other Name in this package that information isn't recoverable
// from the day it falls on alone.
type ShabbatMevarchim struct {
	Month hebrew.Month
	Molad hebrew.Molad
}

func (s ShabbatMevarchim) String() string     { return "ShabbatMevarchim" }
func (s ShabbatMevarchim) Category() Category { return CategoryShabbatMevarchim }

// monthAfter returns the month whose molad is blessed on the Shabbat falling
// in month m.
func monthAfter(y hebrew.Year, m hebrew.Month) hebrew.Month {
	switch m {
	case hebrew.Tishrei:
		return hebrew.Cheshvan
	case hebrew.Cheshvan:
		return hebrew.Kislev
	case hebrew.Kislev:
		return hebrew.Teves
	case hebrew.Teves:
		return hebrew.Shvat
	case hebrew.Shvat:
		if y.IsLeap() {
			return hebrew.Adar1
		}
		return hebrew.Adar
	case hebrew.Adar:
		return hebrew.Nissan
	case hebrew.Adar1:
		return hebrew.Adar2
	case hebrew.Adar2:
		return hebrew.Nissan
	case hebrew.Nissan:
		return hebrew.Iyar
	case hebrew.Iyar:
		return hebrew.Sivan
	case hebrew.Sivan:
		return hebrew.Tammuz
	case hebrew.Tammuz:
		return hebrew.Av
	case hebrew.Av:
		return hebrew.Elul
	default: // hebrew.Elul
		return hebrew.Tishrei
	}
}

// weekdayOffset returns how many days back from the 29th of the month the
// preceding Shabbat falls, given the weekday the 29th lands on.
func weekdayOffset(dow civil.Weekday) uint8 {
	switch dow {
	case civil.Shabbos:
		return 0
	case civil.Sunday:
		return 1
	case civil.Monday:
		return 2
	case civil.Tuesday:
		return 3
	case civil.Wednesday:
		return 4
	case civil.Thursday:
		return 5
	default: // civil.Friday
		return 6
	}
}

// generateShabbatMevarchim appends one Shabbat Mevarchim per month from
// Tishrei through Tammuz, each carrying the next month's molad. Tishrei is
// not announced, so Elul has no entry.
func generateShabbatMevarchim[T any](y hebrew.Year, out *Buffer[T]) error {
	months := []hebrew.Month{hebrew.Tishrei, hebrew.Cheshvan, hebrew.Kislev, hebrew.Teves, hebrew.Shvat}
	if y.IsLeap() {
		months = append(months, hebrew.Adar1, hebrew.Adar2)
	} else {
		months = append(months, hebrew.Adar)
	}
	months = append(months, hebrew.Nissan, hebrew.Iyar, hebrew.Sivan, hebrew.Tammuz)

	for _, m := range months {
		twentyNinth, err := y.AndMonthDay(m, 29)
		if err != nil {
			return err
		}
		offset := weekdayOffset(twentyNinth.Weekday())
		if offset > 28 {
			return fmt.Errorf("hebrew: impossible weekday offset %d for month %v", offset, m)
		}
		day, err := y.AndMonthDay(m, 29-offset)
		if err != nil {
			return err
		}

		nextMonth := monthAfter(y, m)
		molad, err := y.Molad(nextMonth)
		if err != nil {
			return err
		}

		out.Append(Event[T]{Day: day, Name: ShabbatMevarchim{Month: nextMonth, Molad: molad}})
	}
	return nil
}
