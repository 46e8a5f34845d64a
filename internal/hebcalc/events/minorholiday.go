package events

import (
	"fmt"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// MinorHoliday identifies a minor fast, eve, or year-shape-dependent
// observance not already covered by Yom Tov or Chol.
type MinorHoliday uint8

const (
	ErevYomKippur MinorHoliday = iota
	ErevSukkos
	ErevPesach
	PesachSheni
	LagBaOmer
	ErevShavuos
	ErevRoshHashanah
	FifteenShvat
	FifteenAv
	PurimKattan
	ShushanPurimKattan
	ShabbosHaGadol
	TaanisBechoros
	ShabbosChazon
	ShabbosNachamu
	LeilSlichos
	ShabbosShuva
)

var minorHolidayNames = [...]string{
	"ErevYomKippur", "ErevSukkos", "ErevPesach", "PesachSheni", "LagBaOmer", "ErevShavuos",
	"ErevRoshHashanah", "FifteenShvat", "FifteenAv", "PurimKattan", "ShushanPurimKattan",
	"ShabbosHaGadol", "TaanisBechoros", "ShabbosChazon", "ShabbosNachamu", "LeilSlichos",
	"ShabbosShuva",
}

func (m MinorHoliday) String() string     { return minorHolidayNames[m] }
func (m MinorHoliday) Category() Category { return CategoryMinorHoliday }

// generateMinorHoliday appends the fixed-date minor observances plus the
// year-shape-dependent ones, whose weekday arithmetic follows the actual
// weekdays those anchor days (Pesach, Tisha B'Av, Rosh Hashana, Erev Rosh
// Hashana) are astronomically restricted to.
func generateMinorHoliday[T any](y hebrew.Year, out *Buffer[T]) error {
	add := func(m hebrew.Month, d uint8, name MinorHoliday) error {
		dd, err := y.AndMonthDay(m, d)
		if err != nil {
			return err
		}
		out.Append(Event[T]{Day: dd, Name: name})
		return nil
	}

	fixed := []struct {
		m    hebrew.Month
		d    uint8
		name MinorHoliday
	}{
		{hebrew.Tishrei, 9, ErevYomKippur},
		{hebrew.Tishrei, 14, ErevSukkos},
		{hebrew.Nissan, 14, ErevPesach},
		{hebrew.Iyar, 14, PesachSheni},
		{hebrew.Iyar, 18, LagBaOmer},
		{hebrew.Sivan, 5, ErevShavuos},
		{hebrew.Elul, 29, ErevRoshHashanah},
		{hebrew.Shvat, 15, FifteenShvat},
		{hebrew.Av, 15, FifteenAv},
	}
	for _, f := range fixed {
		if err := add(f.m, f.d, f.name); err != nil {
			return err
		}
	}

	if y.IsLeap() {
		if err := add(hebrew.Adar1, 14, PurimKattan); err != nil {
			return err
		}
		if err := add(hebrew.Adar1, 15, ShushanPurimKattan); err != nil {
			return err
		}
	}

	// The weekday tables below are keyed on the weekday of the evening on
	// which each anchor day begins, i.e. the civil weekday before it.
	eve := func(w civil.Weekday) civil.Weekday { return (w + 6) % 7 }

	pesach1, err := y.AndMonthDay(hebrew.Nissan, 15)
	if err != nil {
		return err
	}
	var hagadolDay uint8
	switch eve(pesach1.Weekday()) {
	case civil.Shabbos:
		hagadolDay = 14
	case civil.Monday:
		hagadolDay = 12
	case civil.Wednesday:
		hagadolDay = 10
	case civil.Friday:
		hagadolDay = 8
	default:
		return fmt.Errorf("hebrew: Pesach shouldn't fall on %v", pesach1.Weekday())
	}
	if err := add(hebrew.Nissan, hagadolDay, ShabbosHaGadol); err != nil {
		return err
	}

	bechorosDay := uint8(14)
	if eve(pesach1.Weekday()) == civil.Shabbos {
		bechorosDay = 12
	}
	if err := add(hebrew.Nissan, bechorosDay, TaanisBechoros); err != nil {
		return err
	}

	tishaBeav, err := y.AndMonthDay(hebrew.Av, 9)
	if err != nil {
		return err
	}
	var chazonDay uint8
	switch eve(tishaBeav.Weekday()) {
	case civil.Shabbos:
		chazonDay = 8
	case civil.Monday:
		chazonDay = 6
	case civil.Wednesday:
		chazonDay = 4
	case civil.Friday:
		chazonDay = 9
	default:
		return fmt.Errorf("hebrew: Tisha B'Av shouldn't fall on %v", tishaBeav.Weekday())
	}
	if err := add(hebrew.Av, chazonDay, ShabbosChazon); err != nil {
		return err
	}
	if err := add(hebrew.Av, chazonDay+7, ShabbosNachamu); err != nil {
		return err
	}

	var shuvaDay uint8
	switch eve(y.RoshHashanaWeekday()) {
	case civil.Sunday:
		shuvaDay = 6
	case civil.Monday:
		shuvaDay = 5
	case civil.Wednesday:
		shuvaDay = 3
	case civil.Friday:
		shuvaDay = 8
	default:
		return fmt.Errorf("hebrew: Shabbat Shuva shouldn't fall after RH on %v", y.RoshHashanaWeekday())
	}

	erevRH, err := y.AndMonthDay(hebrew.Elul, 29)
	if err != nil {
		return err
	}
	var selichosDay uint8
	switch eve(erevRH.Weekday()) {
	case civil.Sunday:
		selichosDay = 21
	case civil.Tuesday:
		selichosDay = 26
	case civil.Thursday:
		selichosDay = 24
	case civil.Shabbos:
		selichosDay = 22
	default:
		return fmt.Errorf("hebrew: Leil Selichot shouldn't fall with Erev RH on %v", erevRH.Weekday())
	}
	if err := add(hebrew.Elul, selichosDay, LeilSlichos); err != nil {
		return err
	}
	if err := add(hebrew.Tishrei, shuvaDay, ShabbosShuva); err != nil {
		return err
	}

	return nil
}
