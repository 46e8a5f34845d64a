package civil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromYMDRoundTrip(t *testing.T) {
	for y := -100; y <= 100; y += 7 {
		for m := 1; m <= 12; m++ {
			d, err := FromYMD(y, m, 15)
			require.NoError(t, err)
			require.Equal(t, y, d.Year())
			require.Equal(t, m, d.Month())
			require.Equal(t, 15, d.Day())
		}
	}
}

func TestFromYMDRejectsOutOfRange(t *testing.T) {
	_, err := FromYMD(2020, 13, 1)
	require.ErrorIs(t, err, ErrMonthOutOfRange)

	_, err = FromYMD(2021, 2, 29) // not a leap year
	require.ErrorIs(t, err, ErrDayOutOfRange)

	_, err = FromYMD(2020, 2, 29) // leap year
	require.NoError(t, err)
}

func TestWeekdayKnownAnchors(t *testing.T) {
	// 1970-01-01 is a Thursday.
	d, err := FromYMD(1970, 1, 1)
	require.NoError(t, err)
	require.Equal(t, Thursday, d.Weekday())

	// 2000-01-01 is a Saturday.
	d, err = FromYMD(2000, 1, 1)
	require.NoError(t, err)
	require.Equal(t, Shabbos, d.Weekday())
}

func TestDaysFromCivilRoundTripNegativeYears(t *testing.T) {
	for y := -3761; y <= -3758; y++ {
		for _, md := range [][2]int{{1, 1}, {6, 15}, {12, 31}} {
			m, day := md[0], md[1]
			if day > daysInMonth(y, m) {
				continue
			}
			d, err := FromYMD(y, m, day)
			require.NoError(t, err)
			got := FromDaysSinceEpoch(d.DaysSinceEpoch())
			require.Equal(t, y, got.Year())
			require.Equal(t, m, got.Month())
			require.Equal(t, day, got.Day())
		}
	}
}

func TestAddDays(t *testing.T) {
	d, err := FromYMD(2020, 2, 28)
	require.NoError(t, err)
	next := d.AddDays(1)
	require.Equal(t, 2020, next.Year())
	require.Equal(t, 2, next.Month())
	require.Equal(t, 29, next.Day())

	nextNext := next.AddDays(1)
	require.Equal(t, 3, nextNext.Month())
	require.Equal(t, 1, nextNext.Day())
}

func TestAddHoursCarriesIntoDay(t *testing.T) {
	d, err := FromYMD(2020, 1, 1)
	require.NoError(t, err)
	d = d.AndHMS(18, 0, 0)
	later := d.AddHours(8)
	require.Equal(t, 2, later.Day())
	require.Equal(t, 2, later.Hour())
}

func TestAddChalakimCarries(t *testing.T) {
	d, err := FromYMD(2020, 1, 1)
	require.NoError(t, err)
	d = d.AndHMS(17, 0, 0)
	later := d.AddChalakim(1080) // exactly one hour
	require.Equal(t, 18, later.Hour())
	require.Equal(t, 0, later.Chalakim())
}

func TestSub(t *testing.T) {
	a, _ := FromYMD(2020, 1, 10)
	b, _ := FromYMD(2020, 1, 1)
	require.Equal(t, int64(9), a.Sub(b))
	require.Equal(t, int64(-9), b.Sub(a))
}
