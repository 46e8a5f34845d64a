package events

import (
	"fmt"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// SpecialParsha identifies one of the four additional Torah readings
// assigned by the weekday of the following Rosh Hashana.
type SpecialParsha uint8

const (
	Shekalim SpecialParsha = iota
	Zachor
	Parah
	HaChodesh
)

var specialParshaNames = [...]string{"Shekalim", "Zachor", "Parah", "HaChodesh"}

func (s SpecialParsha) String() string     { return specialParshaNames[s] }
func (s SpecialParsha) Category() Category { return CategorySpecialParsha }

// generateSpecialParsha appends Shekalim, Zachor, Parah and HaChodesh,
// keyed off the next Rosh Hashana's weekday and the current year's leap
// status (which decides the Adar vs. Adar2 slot).
func generateSpecialParsha[T any](y hebrew.Year, out *Buffer[T]) error {
	rhNext := y.NextRoshHashanaWeekday()
	adarMonth := hebrew.Adar
	if y.IsLeap() {
		adarMonth = hebrew.Adar2
	}

	add := func(m hebrew.Month, d uint8, name SpecialParsha) error {
		dd, err := y.AndMonthDay(m, d)
		if err != nil {
			return err
		}
		out.Append(Event[T]{Day: dd, Name: name})
		return nil
	}

	// Shekalim: on or before the second day of Rosh Chodesh Adar(2).
	if rhNext == civil.Tuesday {
		if err := add(adarMonth, 1, Shekalim); err != nil {
			return err
		}
	} else {
		month := hebrew.Shvat
		if y.IsLeap() {
			month = hebrew.Adar1
		}
		var d uint8
		switch rhNext {
		case civil.Monday:
			d = 25
		case civil.Thursday:
			d = 29
		case civil.Shabbos:
			d = 27
		default:
			return fmt.Errorf("hebrew: next Rosh Hashana on %v violates Lo ADU Rosh", rhNext)
		}
		if err := add(month, d, Shekalim); err != nil {
			return err
		}
	}

	var zachorDay uint8
	switch rhNext {
	case civil.Monday:
		zachorDay = 9
	case civil.Tuesday:
		zachorDay = 8
	case civil.Thursday:
		zachorDay = 13
	case civil.Shabbos:
		zachorDay = 11
	default:
		return fmt.Errorf("hebrew: next Rosh Hashana on %v violates Lo ADU Rosh", rhNext)
	}
	if err := add(adarMonth, zachorDay, Zachor); err != nil {
		return err
	}

	var parahDay uint8
	switch rhNext {
	case civil.Monday:
		parahDay = 23
	case civil.Tuesday:
		parahDay = 22
	case civil.Thursday:
		parahDay = 20
	case civil.Shabbos:
		parahDay = 18
	default:
		return fmt.Errorf("hebrew: next Rosh Hashana on %v violates Lo ADU Rosh", rhNext)
	}
	if err := add(adarMonth, parahDay, Parah); err != nil {
		return err
	}

	if rhNext == civil.Monday {
		if err := add(hebrew.Nissan, 1, HaChodesh); err != nil {
			return err
		}
	} else {
		var d uint8
		switch rhNext {
		case civil.Tuesday:
			d = 29
		case civil.Thursday:
			d = 27
		case civil.Shabbos:
			d = 25
		default:
			return fmt.Errorf("hebrew: next Rosh Hashana on %v violates Lo ADU Rosh", rhNext)
		}
		if err := add(adarMonth, d, HaChodesh); err != nil {
			return err
		}
	}

	return nil
}
