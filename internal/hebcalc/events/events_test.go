package events

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

func allCategories() []Category {
	return []Category{
		CategoryYomTov, CategoryChol, CategoryParsha, CategorySpecialParsha,
		CategoryOmer, CategoryMinorHoliday, CategoryShabbatMevarchim,
		CategoryIsraeli, CategoryChabad,
	}
}

func generateAll(t *testing.T, yearNum uint32, loc Location) []Event[struct{}] {
	t.Helper()
	y, err := hebrew.NewYear(yearNum)
	require.NoError(t, err)
	out := NewBuffer[struct{}](128)
	opts := Options{Categories: allCategories(), Location: loc}
	require.NoError(t, Generate[struct{}](y, opts, out, nil, nil))
	return out.Events()
}

func findByName(events []Event[struct{}], match func(Name) bool) []Event[struct{}] {
	var found []Event[struct{}]
	for _, e := range events {
		if match(e.Name) {
			found = append(found, e)
		}
	}
	return found
}

func TestParshaAndSpecialParshaAlwaysOnShabbat(t *testing.T) {
	for _, yr := range []uint32{5779, 5780, 5781, 5782, 5783} {
		events := generateAll(t, yr, Diaspora)
		for _, e := range events {
			cat := e.Name.Category()
			if cat == CategoryParsha || cat == CategorySpecialParsha {
				require.Equal(t, civil.Shabbos, e.Day.Weekday(), "year %d: %v on %v", yr, e.Name, e.Day.Weekday())
			}
		}
	}
}

func TestNoFastDayOnFriday(t *testing.T) {
	fasts := map[Chol]bool{
		TzomGedalia: true, TenTeves: true, TaanisEsther: true, SeventeenTammuz: true, NineAv: true,
	}
	for _, yr := range []uint32{5779, 5780, 5781, 5782, 5783} {
		events := generateAll(t, yr, Diaspora)
		for _, e := range events {
			if c, ok := e.Name.(Chol); ok && fasts[c] {
				require.NotEqual(t, civil.Friday, e.Day.Weekday(), "year %d: %v on Friday", yr, c)
				require.NotEqual(t, civil.Shabbos, e.Day.Weekday(), "year %d: %v on Shabbat", yr, c)
			}
		}
	}
}

func TestTaanisEstherNeverThursday(t *testing.T) {
	for yr := uint32(5779); yr < 5820; yr++ {
		events := generateAll(t, yr, Diaspora)
		for _, e := range events {
			if c, ok := e.Name.(Chol); ok && c == TaanisEsther {
				require.NotEqual(t, civil.Thursday, e.Day.Weekday(), "year %d", yr)
			}
		}
	}
}

func TestOmerFirstAndLastDays(t *testing.T) {
	y, err := hebrew.NewYear(5780)
	require.NoError(t, err)
	out := NewBuffer[struct{}](64)
	require.NoError(t, generateOmer[struct{}](y, out))

	events := out.Events()
	require.Len(t, events, 49)

	first := events[0]
	require.Equal(t, Omer(0), first.Name)
	require.Equal(t, hebrew.Nissan, first.Day.Month())
	require.Equal(t, uint8(16), first.Day.Day())

	last := events[48]
	require.Equal(t, Omer(48), last.Name)
	require.Equal(t, hebrew.Sivan, last.Day.Month())
	require.Equal(t, uint8(5), last.Day.Day())
}

func TestShabbosHaGadolWithinNissanWindow(t *testing.T) {
	for _, yr := range []uint32{5779, 5780, 5781, 5782, 5783} {
		events := generateAll(t, yr, Diaspora)
		found := findByName(events, func(n Name) bool {
			m, ok := n.(MinorHoliday)
			return ok && m == ShabbosHaGadol
		})
		require.Len(t, found, 1, "year %d", yr)
		require.Equal(t, hebrew.Nissan, found[0].Day.Month())
		require.GreaterOrEqual(t, found[0].Day.Day(), uint8(8))
		require.LessOrEqual(t, found[0].Day.Day(), uint8(14))
	}
}

func TestShabbosNachamuIsWeekAfterChazon(t *testing.T) {
	for _, yr := range []uint32{5779, 5780, 5781, 5782, 5783} {
		events := generateAll(t, yr, Diaspora)
		chazon := findByName(events, func(n Name) bool {
			m, ok := n.(MinorHoliday)
			return ok && m == ShabbosChazon
		})
		nachamu := findByName(events, func(n Name) bool {
			m, ok := n.(MinorHoliday)
			return ok && m == ShabbosNachamu
		})
		require.Len(t, chazon, 1, "year %d", yr)
		require.Len(t, nachamu, 1, "year %d", yr)
		require.Equal(t, hebrew.Av, chazon[0].Day.Month())
		require.Equal(t, hebrew.Av, nachamu[0].Day.Month())
		require.Equal(t, chazon[0].Day.Day()+7, nachamu[0].Day.Day())
	}
}

func TestLeilSlichosAlwaysSunday(t *testing.T) {
	for _, yr := range []uint32{5779, 5780, 5781, 5782, 5783} {
		events := generateAll(t, yr, Diaspora)
		found := findByName(events, func(n Name) bool {
			m, ok := n.(MinorHoliday)
			return ok && m == LeilSlichos
		})
		require.Len(t, found, 1, "year %d", yr)
		require.Equal(t, civil.Sunday, found[0].Day.Weekday())
	}
}

func TestShekalim5780IsShvat27(t *testing.T) {
	y, err := hebrew.NewYear(5780)
	require.NoError(t, err)
	require.Equal(t, civil.Shabbos, y.NextRoshHashanaWeekday())

	out := NewBuffer[struct{}](8)
	require.NoError(t, generateSpecialParsha[struct{}](y, out))

	found := findByName(out.Events(), func(n Name) bool {
		s, ok := n.(SpecialParsha)
		return ok && s == Shekalim
	})
	require.Len(t, found, 1)
	require.Equal(t, hebrew.Shvat, found[0].Day.Month())
	require.Equal(t, uint8(27), found[0].Day.Day())
}

func TestSukkosIsConsecutiveRun(t *testing.T) {
	y, err := hebrew.NewYear(5780)
	require.NoError(t, err)
	out := NewBuffer[struct{}](64)
	require.NoError(t, generateYomTov[struct{}](y, Diaspora, out, nil, nil))

	sukkosStart, err := y.AndMonthDay(hebrew.Tishrei, 15)
	require.NoError(t, err)
	for offset := uint8(0); offset < 7; offset++ {
		d, err := y.AndMonthDay(hebrew.Tishrei, sukkosStart.Day()+offset)
		require.NoError(t, err)
		found := findByName(out.Events(), func(n Name) bool {
			return n.Category() == CategoryYomTov
		})
		matched := false
		for _, e := range found {
			if e.Day.Equal(d) {
				matched = true
				break
			}
		}
		require.True(t, matched, "day %d of Sukkos not found", offset+1)
	}
}

func TestChanukahIsEightDays(t *testing.T) {
	y, err := hebrew.NewYear(5780)
	require.NoError(t, err)
	out := NewBuffer[struct{}](64)
	require.NoError(t, generateChol[struct{}](y, out))

	count := 0
	for _, e := range out.Events() {
		if c, ok := e.Name.(Chol); ok && c >= Chanukah1 && c <= Chanukah8 {
			count++
		}
	}
	require.Equal(t, 8, count)
}

func TestShabbatMevarchimCarriesNextMonthMolad(t *testing.T) {
	y, err := hebrew.NewYear(5780)
	require.NoError(t, err)
	out := NewBuffer[struct{}](16)
	require.NoError(t, generateShabbatMevarchim[struct{}](y, out))

	for _, e := range out.Events() {
		require.Equal(t, civil.Shabbos, e.Day.Weekday())
		sm, ok := e.Name.(ShabbatMevarchim)
		require.True(t, ok)

		expected, err := y.Molad(sm.Month)
		require.NoError(t, err)
		require.Equal(t, expected, sm.Molad)
	}
}

func TestIsraeliHolidaysRespectYearBounds(t *testing.T) {
	y, err := hebrew.NewYear(5770)
	require.NoError(t, err)
	out := NewBuffer[struct{}](8)
	require.NoError(t, generateIsraeli[struct{}](y, false, out))

	for _, e := range out.Events() {
		h, ok := e.Name.(IsraeliHoliday)
		require.True(t, ok)
		require.NotEqual(t, YomHaAliyah, h, "YomHaAliyah predates 5777")
	}
}
