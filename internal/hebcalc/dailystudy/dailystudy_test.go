package dailystudy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

func dafYomiOn(t *testing.T, yearNum uint32, m hebrew.Month, day uint8) DafYomi {
	t.Helper()
	y, err := hebrew.NewYear(yearNum)
	require.NoError(t, err)
	out := NewBuffer(512)
	require.NoError(t, GenerateDafYomi(y, out))

	target, err := y.AndMonthDay(m, day)
	require.NoError(t, err)

	for _, e := range out.Entries() {
		if e.Day.Equal(target) {
			daf, ok := e.Name.(DafYomi)
			require.True(t, ok)
			return daf
		}
	}
	t.Fatalf("no Daf Yomi entry found for %d/%v/%d", yearNum, m, day)
	return DafYomi{}
}

func TestDafYomiCycleOneEpoch(t *testing.T) {
	daf := dafYomiOn(t, 5684, hebrew.Tishrei, 1)
	require.Equal(t, Berakhot, daf.Masechta)
	require.Equal(t, uint8(2), daf.Page)
}

func TestDafYomiCycleOneYearEnd(t *testing.T) {
	daf := dafYomiOn(t, 5684, hebrew.Elul, 29)
	require.Equal(t, Pesachim, daf.Masechta)
	require.Equal(t, uint8(62), daf.Page)
}

func TestDafYomiCycleOneYearTwo(t *testing.T) {
	daf := dafYomiOn(t, 5685, hebrew.Elul, 29)
	require.Equal(t, MoedKatan, daf.Masechta)
	require.Equal(t, uint8(9), daf.Page)
}

func TestDafYomiCycleTwoStartYear(t *testing.T) {
	daf := dafYomiOn(t, 5735, hebrew.Elul, 29)
	require.Equal(t, Shabbat, daf.Masechta)
	require.Equal(t, uint8(12), daf.Page)
}

func TestDafYomiCycleTwoLaterYear(t *testing.T) {
	daf := dafYomiOn(t, 5780, hebrew.Elul, 29)
	require.Equal(t, Eruvin, daf.Masechta)
	require.Equal(t, uint8(40), daf.Page)
}

func TestDafYomiProducesNothingBeforeEpoch(t *testing.T) {
	y, err := hebrew.NewYear(5683)
	require.NoError(t, err)
	out := NewBuffer(8)
	require.NoError(t, GenerateDafYomi(y, out))
	require.Zero(t, out.Len())
}

func TestYerushalmiYomiSkipsTishaBAvAndYomKippur(t *testing.T) {
	for _, yr := range []uint32{5741, 5750, 5780} {
		y, err := hebrew.NewYear(yr)
		require.NoError(t, err)
		out := NewBuffer(512)
		require.NoError(t, GenerateYerushalmiYomi(y, out))

		avNine, err := y.AndMonthDay(hebrew.Av, 9)
		require.NoError(t, err)
		tishrei10, err := y.AndMonthDay(hebrew.Tishrei, 10)
		require.NoError(t, err)

		for _, e := range out.Entries() {
			require.False(t, e.Day.Equal(avNine), "year %d: entry on 9 Av", yr)
			require.False(t, e.Day.Equal(tishrei10), "year %d: entry on Yom Kippur", yr)
		}
	}
}

func TestYerushalmiYomiProducesNothingBeforeCycleStart(t *testing.T) {
	y, err := hebrew.NewYear(5739)
	require.NoError(t, err)
	out := NewBuffer(8)
	require.NoError(t, GenerateYerushalmiYomi(y, out))
	require.Zero(t, out.Len())
}

func TestRambamOneChapterCycleBeginsAtEpoch(t *testing.T) {
	y, err := hebrew.NewYear(5744)
	require.NoError(t, err)
	out := NewBuffer(256)
	require.NoError(t, GenerateRambamOneChapter(y, out))
	require.NotZero(t, out.Len())

	epoch, err := y.AndMonthDay(hebrew.Nissan, 27)
	require.NoError(t, err)

	first := out.Entries()[0]
	require.True(t, first.Day.Equal(epoch))
	chapter, ok := first.Name.(RambamOneChapter)
	require.True(t, ok)
	require.Equal(t, TransmissionOfTheOralLaw, chapter.Section)
	require.Equal(t, uint8(1), chapter.Chapter)
}

func TestRambamThreeChaptersCycleBeginsAtEpoch(t *testing.T) {
	y, err := hebrew.NewYear(5744)
	require.NoError(t, err)
	out := NewBuffer(256)
	require.NoError(t, GenerateRambamThreeChapters(y, out))
	require.NotZero(t, out.Len())

	first := out.Entries()[0]
	bundle, ok := first.Name.(RambamThreeChapters)
	require.True(t, ok)
	require.Equal(t, TransmissionOfTheOralLaw, bundle.First.Section)
	require.Equal(t, uint8(1), bundle.First.Chapter)
	require.Equal(t, uint8(2), bundle.Second.Chapter)
	require.Equal(t, uint8(3), bundle.Third.Chapter)
}

func TestRambamOneChapterOn2Tammuz5780(t *testing.T) {
	y, err := hebrew.NewYear(5780)
	require.NoError(t, err)
	out := NewBuffer(512)
	require.NoError(t, GenerateRambamOneChapter(y, out))

	target, err := y.AndMonthDay(hebrew.Tammuz, 2)
	require.NoError(t, err)

	for _, e := range out.Entries() {
		if e.Day.Equal(target) {
			chapter, ok := e.Name.(RambamOneChapter)
			require.True(t, ok)
			require.Equal(t, Mourning, chapter.Section)
			require.Equal(t, uint8(11), chapter.Chapter)
			return
		}
	}
	t.Fatal("no Rambam one-chapter entry found for 2 Tammuz 5780")
}

func TestRambamThreeChaptersOn2Tammuz5780(t *testing.T) {
	y, err := hebrew.NewYear(5780)
	require.NoError(t, err)
	out := NewBuffer(512)
	require.NoError(t, GenerateRambamThreeChapters(y, out))

	target, err := y.AndMonthDay(hebrew.Tammuz, 2)
	require.NoError(t, err)

	for _, e := range out.Entries() {
		if e.Day.Equal(target) {
			bundle, ok := e.Name.(RambamThreeChapters)
			require.True(t, ok)
			require.Equal(t, Testimony, bundle.First.Section)
			require.Equal(t, uint8(8), bundle.First.Chapter)
			require.Equal(t, Testimony, bundle.Second.Section)
			require.Equal(t, uint8(9), bundle.Second.Chapter)
			require.Equal(t, Testimony, bundle.Third.Section)
			require.Equal(t, uint8(10), bundle.Third.Chapter)
			return
		}
	}
	t.Fatal("no Rambam three-chapters entry found for 2 Tammuz 5780")
}

func TestRambamChapterTableSumsToCycleLength(t *testing.T) {
	var total uint32
	for _, count := range rambamChapterCounts {
		total += uint32(count)
	}
	require.EqualValues(t, rambamCycleLength, total)
}

func TestGenerateDispatchesRequestedCategoriesOnly(t *testing.T) {
	y, err := hebrew.NewYear(5780)
	require.NoError(t, err)
	out := NewBuffer(64)
	require.NoError(t, Generate(y, Options{Categories: []Category{CategoryDafYomi}}, out))

	for _, e := range out.Entries() {
		require.Equal(t, CategoryDafYomi, e.Name.Category())
	}
	require.NotZero(t, out.Len())
}
