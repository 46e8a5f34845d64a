// Package hebrew implements Hebrew-year construction (molad arithmetic,
// postponement rules, leap years, month schedules) and civil<->Hebrew date
// conversion, built on top of the civil and molad packages.
package hebrew

// Month enumerates the fourteen month slots in calendrical (Tishrei-first)
// order. A non-leap year never uses Adar1/Adar2; a leap year never uses the
// plain Adar slot.
type Month uint8

const (
	Tishrei Month = iota
	Cheshvan
	Kislev
	Teves
	Shvat
	Adar
	Adar1
	Adar2
	Nissan
	Iyar
	Sivan
	Tammuz
	Av
	Elul
)

var monthNames = [...]string{
	"Tishrei", "Cheshvan", "Kislev", "Teves", "Shvat", "Adar", "Adar1", "Adar2",
	"Nissan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
}

func (m Month) String() string {
	if int(m) >= len(monthNames) {
		return "Unknown"
	}
	return monthNames[m]
}
