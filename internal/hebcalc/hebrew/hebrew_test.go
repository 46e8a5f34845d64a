package hebrew

import (
	"testing"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/stretchr/testify/require"
)

func TestRoshHashana5779ToCivil(t *testing.T) {
	d, err := FromYMD(5779, Tishrei, 1)
	require.NoError(t, err)
	civ := d.ToCivil()
	require.Equal(t, 2018, civ.Year())
	require.Equal(t, 9, civ.Month())
	require.Equal(t, 10, civ.Day())
}

func TestYomKippur5779ToCivil(t *testing.T) {
	d, err := FromYMD(5779, Tishrei, 10)
	require.NoError(t, err)
	civ := d.ToCivil()
	require.Equal(t, 2018, civ.Year())
	require.Equal(t, 9, civ.Month())
	require.Equal(t, 18, civ.Day())
}

func TestRoshHashana5780Monday(t *testing.T) {
	y, err := NewYear(5780)
	require.NoError(t, err)
	require.Equal(t, civil.Monday, y.RoshHashanaWeekday())
}

func TestPesach5780Thursday(t *testing.T) {
	d, err := FromYMD(5780, Nissan, 15)
	require.NoError(t, err)
	require.Equal(t, civil.Thursday, d.Weekday())
}

func TestYearShapes(t *testing.T) {
	y5779, err := NewYear(5779)
	require.NoError(t, err)
	require.Equal(t, BaShaZ, y5779.Shape())

	y5780, err := NewYear(5780)
	require.NoError(t, err)
	require.Equal(t, BaShaH, y5780.Shape())
}

func TestMoladCheshvan5780(t *testing.T) {
	y, err := NewYear(5780)
	require.NoError(t, err)
	m, err := y.Molad(Cheshvan)
	require.NoError(t, err)
	civ := m.ToCivil()
	require.Equal(t, 2019, civ.Year())
	require.Equal(t, 10, civ.Month())
	require.Equal(t, 28, civ.Day())
	require.Equal(t, 18, civ.Hour())
	require.Equal(t, 34, civ.ChalakimMinute())
	require.Equal(t, 6, civ.ChalakimRemainder())
}

func TestHebrewCivilRoundTrip(t *testing.T) {
	for year := uint32(5770); year < 5790; year++ {
		y, err := NewYear(year)
		require.NoError(t, err)
		for m := Tishrei; m <= Elul; m++ {
			length := y.Schedule()[m]
			if length == 0 {
				continue
			}
			for day := uint8(1); day <= length; day++ {
				d, err := y.AndMonthDay(m, day)
				require.NoError(t, err)
				civ := d.ToCivil()
				back, err := FromCivil(civ)
				require.NoError(t, err)
				require.True(t, d.Equal(back), "year %d month %v day %d", year, m, day)
			}
		}
	}
}

func TestYearLengthSumsMatchSchedule(t *testing.T) {
	for year := uint32(5765); year < 5800; year++ {
		y, err := NewYear(year)
		require.NoError(t, err)
		var sum uint32
		for _, v := range y.Schedule() {
			sum += uint32(v)
		}
		require.Equal(t, y.Length(), sum)
		require.Contains(t, []uint32{353, 354, 355, 383, 384, 385}, y.Length())
	}
}

func TestLeapYearRejectsPlainAdar(t *testing.T) {
	_, err := FromYMD(5779, Adar, 1) // 5779 is a leap year
	require.ErrorIs(t, err, ErrIsLeapYear)
}

func TestNonLeapYearRejectsAdar1(t *testing.T) {
	_, err := FromYMD(5780, Adar1, 1) // 5780 is not a leap year
	require.ErrorIs(t, err, ErrIsNotLeapYear)
}

func TestYearTooSmall(t *testing.T) {
	_, err := NewYear(100)
	require.ErrorIs(t, err, ErrYearTooSmall)
}
