// Package dailystudy resolves the daily learning cycles attached to the
// Hebrew calendar — Daf Yomi, Yerushalmi Yomi, and the Rambam one-chapter
// and three-chapter programs — into (tractate/section, page/chapter) pairs
// for any given civil day within a Hebrew year.
package dailystudy

import "github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"

// Category identifies one of the four independently-requestable study
// cycles.
type Category uint8

const (
	CategoryDafYomi Category = iota
	CategoryYerushalmiYomi
	CategoryRambamOneChapter
	CategoryRambamThreeChapters
)

// Name identifies a single day's study material within its cycle.
type Name interface {
	Category() Category
	String() string
}

// Entry is one resolved study day.
type Entry struct {
	Day  hebrew.Date
	Name Name
}

// Buffer is a caller-owned, append-only destination for resolved study
// entries.
type Buffer struct {
	entries []Entry
}

// NewBuffer allocates a Buffer with the given starting capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{entries: make([]Entry, 0, capacity)}
}

// Append adds an entry to the buffer.
func (b *Buffer) Append(e Entry) { b.entries = append(b.entries, e) }

// Entries returns the accumulated entries in append order.
func (b *Buffer) Entries() []Entry { return b.entries }

// Len reports the number of accumulated entries.
func (b *Buffer) Len() int { return len(b.entries) }

// offsetOf returns a date's zero-based offset from Rosh Hashana, computed
// by walking the year's schedule — the hebrew package keeps this
// computation private to Year/Date, so callers outside it rebuild it from
// the exported schedule.
func offsetOf(y hebrew.Year, m hebrew.Month, day uint8) uint32 {
	var total uint32
	sched := y.Schedule()
	for mm := hebrew.Tishrei; mm < m; mm++ {
		total += uint32(sched[mm])
	}
	return total + uint32(day) - 1
}

// daysBetween returns the signed day count from a to b, computed via their
// civil instants (both fall at the conventional 18:00 cutoff, so the
// difference is a whole number of days).
func daysBetween(a, b hebrew.Date) int64 {
	return b.ToCivil().Sub(a.ToCivil())
}
