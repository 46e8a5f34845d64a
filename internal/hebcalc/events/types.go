// Package events enumerates the Torah-reading calendar: Yom Tov, weekday
// Chol readings, the weekly Parsha cycle, Special Parshas, the Omer count,
// minor fasts/observances, Shabbat Mevarchim announcements, and the modern
// Israeli/Chabad commemorations, for a single already-constructed Hebrew
// year.
package events

import "github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"

// Location selects which diaspora-only Yom Tov days and candle-lighting
// rules apply.
type Location uint8

const (
	Israel Location = iota
	Diaspora
)

// Category identifies one of the independently-requestable event groups a
// Generate call can populate.
type Category uint8

const (
	CategoryYomTov Category = iota
	CategoryChol
	CategoryParsha
	CategorySpecialParsha
	CategoryOmer
	CategoryMinorHoliday
	CategoryShabbatMevarchim
	CategoryIsraeli
	CategoryChabad
)

// Name identifies an event within its category. Every concrete name type
// (YomTov, Chol, Parsha, ...) implements this interface.
type Name interface {
	Category() Category
	String() string
}

// Event is one calendar entry. CandleLighting and Tzeis are populated only
// for categories/entries that carry them (Yom Tov) and only when the
// caller supplied the corresponding function to Generate; the core never
// interprets T itself.
type Event[T any] struct {
	Day            hebrew.Date
	Name           Name
	CandleLighting *T
	Tzeis          *T
}

// Buffer is a caller-owned, append-only destination for generated events.
// Pre-sizing it with NewBuffer avoids reallocation for the typical
// (small, fixed) per-category event counts.
type Buffer[T any] struct {
	events []Event[T]
}

// NewBuffer allocates a Buffer with the given starting capacity.
func NewBuffer[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{events: make([]Event[T], 0, capacity)}
}

// Append adds an event to the buffer.
func (b *Buffer[T]) Append(e Event[T]) {
	b.events = append(b.events, e)
}

// Events returns the accumulated events in append order.
func (b *Buffer[T]) Events() []Event[T] {
	return b.events
}

// Len reports the number of accumulated events.
func (b *Buffer[T]) Len() int { return len(b.events) }
