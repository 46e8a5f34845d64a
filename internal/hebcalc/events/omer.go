package events

import (
	"strconv"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// Omer identifies one of the 49 days of the counting of the Omer, running
// from 16 Nissan through 5 Sivan inclusive.
type Omer uint8

const omerCount = 49

func (o Omer) String() string     { return "Omer" + strconv.Itoa(int(o)+1) }
func (o Omer) Category() Category { return CategoryOmer }

// generateOmer appends the 49 fixed Omer days starting 16 Nissan.
func generateOmer[T any](y hebrew.Year, out *Buffer[T]) error {
	nissan16, err := y.AndMonthDay(hebrew.Nissan, 16)
	if err != nil {
		return err
	}
	out.Append(Event[T]{Day: nissan16, Name: Omer(0)})

	for offset := 1; offset < omerCount; offset++ {
		d, err := y.DateAtOffset(nissan16Offset(y) + uint32(offset))
		if err != nil {
			return err
		}
		out.Append(Event[T]{Day: d, Name: Omer(offset)})
	}
	return nil
}

// nissan16Offset returns 16 Nissan's zero-based day offset from Rosh
// Hashana, computed via the schedule rather than duplicated arithmetic.
func nissan16Offset(y hebrew.Year) uint32 {
	var total uint32
	sched := y.Schedule()
	for m := hebrew.Tishrei; m < hebrew.Nissan; m++ {
		total += uint32(sched[m])
	}
	return total + 15
}
