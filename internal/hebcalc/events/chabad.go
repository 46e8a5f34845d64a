package events

import "github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"

// ChabadHoliday identifies a Chabad-specific commemoration, each bound to
// the year it first occurred historically.
type ChabadHoliday uint8

const (
	YudKislev ChabadHoliday = iota
	YudTesKislev
	ChofKislev
	YudBeisTammuz
	YudGimmelTammuz
)

var chabadHolidayNames = [...]string{
	"YudKislev", "YudTesKislev", "ChofKislev", "YudBeisTammuz", "YudGimmelTammuz",
}

func (c ChabadHoliday) String() string     { return chabadHolidayNames[c] }
func (c ChabadHoliday) Category() Category { return CategoryChabad }

// generateChabad appends the five fixed Chabad commemorations, each gated
// by the historical year it began being observed.
func generateChabad[T any](y hebrew.Year, out *Buffer[T]) error {
	add := func(m hebrew.Month, d uint8, minYear uint32, name ChabadHoliday) error {
		if y.Number() < minYear {
			return nil
		}
		dd, err := y.AndMonthDay(m, d)
		if err != nil {
			return err
		}
		out.Append(Event[T]{Day: dd, Name: name})
		return nil
	}

	if err := add(hebrew.Kislev, 10, 5588, YudKislev); err != nil {
		return err
	}
	if err := add(hebrew.Kislev, 19, 5560, YudTesKislev); err != nil {
		return err
	}
	if err := add(hebrew.Kislev, 20, 5560, ChofKislev); err != nil {
		return err
	}
	if err := add(hebrew.Tammuz, 12, 5688, YudBeisTammuz); err != nil {
		return err
	}
	if err := add(hebrew.Tammuz, 13, 5689, YudGimmelTammuz); err != nil {
		return err
	}
	return nil
}
