package hebrew

import (
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/molad"
)

// Molad is a chalakim-since-Epoch scalar identifying a mean lunar
// conjunction instant.
type Molad uint64

// ToCivil converts the molad to its civil instant (hour:minute, plus a
// sub-minute chalakim remainder accessible via civil.Date.ChalakimRemainder).
func (m Molad) ToCivil() civil.Date {
	return molad.ToCivil(uint64(m))
}

// Chalakim returns the raw chalakim-since-Epoch value.
func (m Molad) Chalakim() uint64 { return uint64(m) }
