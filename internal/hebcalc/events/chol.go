package events

import (
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// Chol identifies a weekday Torah-reading occasion outside the Yom Tov set:
// Rosh Chodesh days, Chanukah, the minor fasts, Purim and Shushan Purim.
type Chol uint8

const (
	TzomGedalia Chol = iota
	RoshChodeshCheshvan1
	RoshChodeshCheshvan2
	Chanukah1
	Chanukah2
	Chanukah3
	Chanukah4
	Chanukah5
	Chanukah6
	Chanukah7
	Chanukah8
	TenTeves
	RoshChodeshShvat
	RoshChodeshNissan
	RoshChodeshIyar1
	RoshChodeshIyar2
	RoshChodeshSivan
	RoshChodeshTammuz1
	RoshChodeshTammuz2
	RoshChodeshAv
	RoshChodeshElul1
	RoshChodeshElul2
	RoshChodeshKislev1
	RoshChodeshKislev2
	RoshChodeshKislev
	RoshChodeshTeves1
	RoshChodeshTeves2
	RoshChodeshTeves
	RoshChodeshAdar1
	RoshChodeshAdar2
	TaanisEsther
	Purim
	ShushanPurim
	RoshChodeshAdarRishon1
	RoshChodeshAdarRishon2
	RoshChodeshAdarSheni1
	RoshChodeshAdarSheni2
	SeventeenTammuz
	NineAv
)

var cholNames = [...]string{
	"TzomGedalia", "RoshChodeshCheshvan1", "RoshChodeshCheshvan2", "Chanukah1", "Chanukah2",
	"Chanukah3", "Chanukah4", "Chanukah5", "Chanukah6", "Chanukah7", "Chanukah8", "TenTeves",
	"RoshChodeshShvat", "RoshChodeshNissan", "RoshChodeshIyar1", "RoshChodeshIyar2",
	"RoshChodeshSivan", "RoshChodeshTammuz1", "RoshChodeshTammuz2", "RoshChodeshAv",
	"RoshChodeshElul1", "RoshChodeshElul2", "RoshChodeshKislev1", "RoshChodeshKislev2",
	"RoshChodeshKislev", "RoshChodeshTeves1", "RoshChodeshTeves2", "RoshChodeshTeves",
	"RoshChodeshAdar1", "RoshChodeshAdar2", "TaanisEsther", "Purim", "ShushanPurim",
	"RoshChodeshAdarRishon1", "RoshChodeshAdarRishon2", "RoshChodeshAdarSheni1",
	"RoshChodeshAdarSheni2", "SeventeenTammuz", "NineAv",
}

func (c Chol) String() string     { return cholNames[c] }
func (c Chol) Category() Category { return CategoryChol }

// generateChol appends the weekday Torah-reading occasions for the year:
// Rosh Chodesh for every month, Chanukah (with its Kislev/Teves length-
// dependent shift), the fixed fasts, and Purim/Shushan Purim in the
// leap-year-dependent Adar slot.
func generateChol[T any](y hebrew.Year, out *Buffer[T]) error {
	add := func(m hebrew.Month, d uint8, name Chol) error {
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
		name Chol
	}{
		{hebrew.Tishrei, 30, RoshChodeshCheshvan1},
		{hebrew.Cheshvan, 1, RoshChodeshCheshvan2},
		{hebrew.Kislev, 25, Chanukah1},
		{hebrew.Kislev, 26, Chanukah2},
		{hebrew.Kislev, 27, Chanukah3},
		{hebrew.Kislev, 28, Chanukah4},
		{hebrew.Kislev, 29, Chanukah5},
		{hebrew.Shvat, 1, RoshChodeshShvat},
		{hebrew.Teves, 10, TenTeves},
		{hebrew.Nissan, 1, RoshChodeshNissan},
		{hebrew.Nissan, 30, RoshChodeshIyar1},
		{hebrew.Iyar, 1, RoshChodeshIyar2},
		{hebrew.Sivan, 1, RoshChodeshSivan},
		{hebrew.Sivan, 30, RoshChodeshTammuz1},
		{hebrew.Tammuz, 1, RoshChodeshTammuz2},
		{hebrew.Av, 1, RoshChodeshAv},
		{hebrew.Av, 30, RoshChodeshElul1},
		{hebrew.Elul, 1, RoshChodeshElul2},
	}
	for _, f := range fixed {
		if err := add(f.m, f.d, f.name); err != nil {
			return err
		}
	}

	sched := y.Schedule()

	if sched[hebrew.Cheshvan] == 30 {
		if err := add(hebrew.Cheshvan, 30, RoshChodeshKislev1); err != nil {
			return err
		}
		if err := add(hebrew.Kislev, 1, RoshChodeshKislev2); err != nil {
			return err
		}
	} else {
		if err := add(hebrew.Kislev, 1, RoshChodeshKislev); err != nil {
			return err
		}
	}

	if sched[hebrew.Kislev] == 30 {
		for _, f := range []struct {
			m    hebrew.Month
			d    uint8
			name Chol
		}{
			{hebrew.Kislev, 30, RoshChodeshTeves1},
			{hebrew.Teves, 1, RoshChodeshTeves2},
			{hebrew.Kislev, 30, Chanukah6},
			{hebrew.Teves, 1, Chanukah7},
			{hebrew.Teves, 2, Chanukah8},
		} {
			if err := add(f.m, f.d, f.name); err != nil {
				return err
			}
		}
	} else {
		for _, f := range []struct {
			m    hebrew.Month
			d    uint8
			name Chol
		}{
			{hebrew.Teves, 1, RoshChodeshTeves},
			{hebrew.Teves, 1, Chanukah6},
			{hebrew.Teves, 2, Chanukah7},
			{hebrew.Teves, 3, Chanukah8},
		} {
			if err := add(f.m, f.d, f.name); err != nil {
				return err
			}
		}
	}

	if !y.IsLeap() {
		if err := add(hebrew.Shvat, 30, RoshChodeshAdar1); err != nil {
			return err
		}
		if err := add(hebrew.Adar, 1, RoshChodeshAdar2); err != nil {
			return err
		}
		teDay := uint8(13)
		if y.NextRoshHashanaWeekday() == civil.Thursday {
			teDay = 11
		}
		if err := add(hebrew.Adar, teDay, TaanisEsther); err != nil {
			return err
		}
		if err := add(hebrew.Adar, 14, Purim); err != nil {
			return err
		}
		if err := add(hebrew.Adar, 15, ShushanPurim); err != nil {
			return err
		}
	} else {
		if err := add(hebrew.Shvat, 30, RoshChodeshAdarRishon1); err != nil {
			return err
		}
		if err := add(hebrew.Adar1, 1, RoshChodeshAdarRishon2); err != nil {
			return err
		}
		if err := add(hebrew.Adar1, 30, RoshChodeshAdarSheni1); err != nil {
			return err
		}
		if err := add(hebrew.Adar2, 1, RoshChodeshAdarSheni2); err != nil {
			return err
		}
		teDay := uint8(13)
		if y.NextRoshHashanaWeekday() == civil.Thursday {
			teDay = 11
		}
		if err := add(hebrew.Adar2, teDay, TaanisEsther); err != nil {
			return err
		}
		if err := add(hebrew.Adar2, 14, Purim); err != nil {
			return err
		}
		if err := add(hebrew.Adar2, 15, ShushanPurim); err != nil {
			return err
		}
	}

	// 17 Tammuz falls on Shabbat when the next Rosh Hashana starts on
	// Monday; both it and 9 Av shift forward a day.
	if y.NextRoshHashanaWeekday() == civil.Monday {
		if err := add(hebrew.Tammuz, 18, SeventeenTammuz); err != nil {
			return err
		}
		if err := add(hebrew.Av, 10, NineAv); err != nil {
			return err
		}
	} else {
		if err := add(hebrew.Tammuz, 17, SeventeenTammuz); err != nil {
			return err
		}
		if err := add(hebrew.Av, 9, NineAv); err != nil {
			return err
		}
	}

	if y.RoshHashanaWeekday() == civil.Thursday {
		if err := add(hebrew.Tishrei, 4, TzomGedalia); err != nil {
			return err
		}
	} else {
		if err := add(hebrew.Tishrei, 3, TzomGedalia); err != nil {
			return err
		}
	}

	return nil
}
