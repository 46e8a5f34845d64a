package events

import (
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// IsraeliHoliday identifies a modern Israeli national commemoration, most of
// which only apply from the year the Knesset established them.
type IsraeliHoliday uint8

const (
	YomHaZikaron IsraeliHoliday = iota
	YomHaAtzmaut
	YomYerushalayim
	YomHaShoah
	YomHaAliyah
	Sigd
)

var israeliHolidayNames = [...]string{
	"YomHaZikaron", "YomHaAtzmaut", "YomYerushalayim", "YomHaShoah", "YomHaAliyah", "Sigd",
}

func (h IsraeliHoliday) String() string     { return israeliHolidayNames[h] }
func (h IsraeliHoliday) Category() Category { return CategoryIsraeli }

// generateIsraeli appends the modern Israeli commemorations, each gated by
// the year the Knesset established it, with Yom HaShoah and the
// Zikaron/Atzmaut pair shifted off Shabbat-adjacent weekdays according to
// year shape (unless exactDays forces the unshifted fixed date).
func generateIsraeli[T any](y hebrew.Year, exactDays bool, out *Buffer[T]) error {
	add := func(m hebrew.Month, d uint8, name IsraeliHoliday) error {
		dd, err := y.AndMonthDay(m, d)
		if err != nil {
			return err
		}
		out.Append(Event[T]{Day: dd, Name: name})
		return nil
	}

	if y.Number() >= 5777 {
		if err := add(hebrew.Cheshvan, 7, YomHaAliyah); err != nil {
			return err
		}
	}
	if y.Number() >= 5727 {
		if err := add(hebrew.Iyar, 28, YomYerushalayim); err != nil {
			return err
		}
	}
	if y.Number() >= 5769 {
		if err := add(hebrew.Cheshvan, 29, Sigd); err != nil {
			return err
		}
	}

	if y.Number() >= 5711 {
		var shoahOffset int8
		if !exactDays {
			switch y.Shape() {
			case hebrew.BaChaG, hebrew.HaShaG, hebrew.ZaChaG, hebrew.ZaShaG:
				shoahOffset = 1
			case hebrew.GaKaZ, hebrew.BaShaZ, hebrew.HaKaZ:
				shoahOffset = 0
			case hebrew.BaChaH, hebrew.BaShaH, hebrew.GaChaH, hebrew.ZaShaH:
				shoahOffset = 0
			case hebrew.ZaChA, hebrew.HaShA, hebrew.HaChA:
				shoahOffset = -1
			}
		}
		if err := add(hebrew.Nissan, uint8(int8(27)+shoahOffset), YomHaShoah); err != nil {
			return err
		}
	}

	var zikaronOffset int8
	if !exactDays {
		switch y.Shape() {
		case hebrew.BaChaG, hebrew.HaShaG, hebrew.ZaChaG, hebrew.ZaShaG:
			if y.Number() >= 5764 {
				zikaronOffset = 1
			}
		case hebrew.GaKaZ, hebrew.BaShaZ, hebrew.HaKaZ:
			zikaronOffset = -1
		case hebrew.BaChaH, hebrew.BaShaH, hebrew.GaChaH, hebrew.ZaShaH:
			zikaronOffset = 0
		case hebrew.ZaChA, hebrew.HaShA, hebrew.HaChA:
			zikaronOffset = -2
		}
	}
	if err := add(hebrew.Iyar, uint8(int8(4)+zikaronOffset), YomHaZikaron); err != nil {
		return err
	}
	if err := add(hebrew.Iyar, uint8(int8(5)+zikaronOffset), YomHaAtzmaut); err != nil {
		return err
	}

	return nil
}
