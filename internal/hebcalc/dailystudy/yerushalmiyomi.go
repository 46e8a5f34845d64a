package dailystudy

import (
	"fmt"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// YerushalmiMasechta is one of the 39 tractates covered by the Yerushalmi
// Yomi cycle.
type YerushalmiMasechta uint8

const (
	YBerakhot YerushalmiMasechta = iota
	Peah
	Demai
	Kilayim
	Sheviit
	Terumot
	Maasrot
	MaaserSheni
	Hallah
	Orlah
	Bikkurim
	YShabbat
	YEruvin
	YPesachim
	YBeitzah
	YRoshHashanah
	YYoma
	YSukkah
	YTaanit
	YShekalim
	YMegillah
	YChagigah
	MoedKattan
	YYevamot
	YKetubot
	Sotah
	YNedarim
	YNazir
	YGittin
	YKiddushin
	YBavaKamma
	YBavaMetsia
	YBavaBatra
	YShevuot
	YMakkot
	YSanhedrin
	YAvodahZarah
	YHorayot
	YNiddah
)

var yerushalmiMasechtaNames = [...]string{
	"Berakhot", "Peah", "Demai", "Kilayim", "Sheviit", "Terumot", "Maasrot", "MaaserSheni",
	"Hallah", "Orlah", "Bikkurim", "Shabbat", "Eruvin", "Pesachim", "Beitzah", "RoshHashanah",
	"Yoma", "Sukkah", "Taanit", "Shekalim", "Megillah", "Chagigah", "MoedKattan", "Yevamot",
	"Ketubot", "Sotah", "Nedarim", "Nazir", "Gittin", "Kiddushin", "BavaKamma", "BavaMetsia",
	"BavaBatra", "Shevuot", "Makkot", "Sanhedrin", "AvodahZarah", "Horayot", "Niddah",
}

func (m YerushalmiMasechta) String() string { return yerushalmiMasechtaNames[m] }

var yerushalmiOrder = [...]YerushalmiMasechta{
	YBerakhot, Peah, Demai, Kilayim, Sheviit, Terumot, Maasrot, MaaserSheni, Hallah, Orlah,
	Bikkurim, YShabbat, YEruvin, YPesachim, YBeitzah, YRoshHashanah, YYoma, YSukkah, YTaanit,
	YShekalim, YMegillah, YChagigah, MoedKattan, YYevamot, YKetubot, Sotah, YNedarim, YNazir,
	YGittin, YKiddushin, YBavaKamma, YBavaMetsia, YBavaBatra, YShevuot, YMakkot, YSanhedrin,
	YAvodahZarah, YHorayot, YNiddah,
}

var yerushalmiLengths = [...]uint8{
	68, 37, 34, 44, 31, 59, 26, 33, 28, 20, 13, 92, 65, 71, 22, 22, 42, 26, 26, 33, 34, 22, 19,
	85, 72, 47, 40, 47, 54, 48, 44, 37, 34, 44, 9, 57, 37, 19, 13,
}

const yerushalmiYomiCycleLength = 1554

func yerushalmiYomiEpoch() (hebrew.Date, error) {
	return hebrew.FromYMD(5740, hebrew.Shvat, 16)
}

// YerushalmiYomi names a single Yerushalmi Yomi folio.
type YerushalmiYomi struct {
	Masechta YerushalmiMasechta
	Page     uint8
}

func (d YerushalmiYomi) String() string     { return fmt.Sprintf("%s %d", d.Masechta, d.Page) }
func (d YerushalmiYomi) Category() Category { return CategoryYerushalmiYomi }

// resolveYerushalmiYomi mirrors the source's simple (non-decrementing)
// walk: each tractate consumes exactly its page count from the running
// count, and the final page number is the remainder plus one.
func resolveYerushalmiYomi(dayOffset uint32) YerushalmiYomi {
	day := dayOffset
	for i, length := range yerushalmiLengths {
		if day < uint32(length) {
			return YerushalmiYomi{Masechta: yerushalmiOrder[i], Page: uint8(day) + 1}
		}
		day -= uint32(length)
	}
	panic("dailystudy: day offset exceeds Yerushalmi Yomi cycle length")
}

// GenerateYerushalmiYomi appends one Yerushalmi Yomi entry for every day of
// the Hebrew year that is not 9 Av or 10 Tishrei (both are skipped in the
// cycle, which does not advance on those fasts). Years before 5740 produce
// nothing; 5740 itself only produces entries from 16 Shvat onward, since
// the cycle did not exist before that date.
func GenerateYerushalmiYomi(y hebrew.Year, out *Buffer) error {
	if y.Number() < 5740 {
		return nil
	}

	avNine, err := y.AndMonthDay(hebrew.Av, 9)
	if err != nil {
		return err
	}

	if y.Number() == 5740 {
		epoch, err := yerushalmiYomiEpoch()
		if err != nil {
			return err
		}
		startOffset := offsetOf(y, hebrew.Shvat, 16)
		for d := startOffset; d < y.Length(); d++ {
			day, err := y.DateAtOffset(d)
			if err != nil {
				return err
			}
			if day.Equal(avNine) {
				continue
			}
			cycleOffset := uint32(daysBetween(epoch, day)) + 1
			if day.Compare(avNine) > 0 {
				cycleOffset--
			}
			out.Append(Entry{Day: day, Name: resolveYerushalmiYomi(cycleOffset % yerushalmiYomiCycleLength)})
		}
		return nil
	}

	epoch, err := yerushalmiYomiEpoch()
	if err != nil {
		return err
	}
	rh, err := y.AndMonthDay(hebrew.Tishrei, 1)
	if err != nil {
		return err
	}
	tishrei10, err := y.AndMonthDay(hebrew.Tishrei, 10)
	if err != nil {
		return err
	}

	skipCount := uint32(1 + (y.Number()-5741)*2)
	learningDaysBeforeRH := uint32(daysBetween(epoch, rh)) - skipCount

	for d := uint32(0); d < y.Length(); d++ {
		day, err := y.DateAtOffset(d)
		if err != nil {
			return err
		}
		if day.Equal(avNine) || day.Equal(tishrei10) {
			continue
		}
		offset := uint32(0)
		switch {
		case day.Compare(avNine) > 0:
			offset = 2
		case day.Compare(tishrei10) > 0:
			offset = 1
		}
		cycleOffset := d - offset + 1 + learningDaysBeforeRH
		out.Append(Entry{Day: day, Name: resolveYerushalmiYomi(cycleOffset % yerushalmiYomiCycleLength)})
	}
	return nil
}
