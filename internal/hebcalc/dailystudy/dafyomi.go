package dailystudy

import (
	"fmt"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// Masechta is one of the 37 tractates covered by the Daf Yomi cycle.
type Masechta uint8

const (
	Berakhot Masechta = iota
	Shabbat
	Eruvin
	Pesachim
	Shekalim
	Yoma
	Sukkah
	Beitzah
	RoshHashanahTractate
	Taanit
	Megillah
	MoedKatan
	Chagigah
	Yevamot
	Ketubot
	Nedarim
	Nazir
	Sotah
	Gittin
	Kiddushin
	BavaKamma
	BavaMetzia
	BavaBatra
	Sanhedrin
	Makkot
	Shevuot
	AvodahZarah
	Horayot
	Zevachim
	Menachot
	Chullin
	Bekhorot
	Arakhin
	Temurah
	Keritot
	Meilah
	Niddah
)

var masechtaNames = [...]string{
	"Berakhot", "Shabbat", "Eruvin", "Pesachim", "Shekalim", "Yoma", "Sukkah", "Beitzah",
	"RoshHashanah", "Taanit", "Megillah", "MoedKatan", "Chagigah", "Yevamot", "Ketubot",
	"Nedarim", "Nazir", "Sotah", "Gittin", "Kiddushin", "BavaKamma", "BavaMetzia",
	"BavaBatra", "Sanhedrin", "Makkot", "Shevuot", "AvodahZarah", "Horayot", "Zevachim",
	"Menachot", "Chullin", "Bekhorot", "Arakhin", "Temurah", "Keritot", "Meilah", "Niddah",
}

func (m Masechta) String() string { return masechtaNames[m] }

// dafYomiOrder is the fixed tractate order shared by both cycles.
var dafYomiOrder = [...]Masechta{
	Berakhot, Shabbat, Eruvin, Pesachim, Shekalim, Yoma, Sukkah, Beitzah, RoshHashanahTractate,
	Taanit, Megillah, MoedKatan, Chagigah, Yevamot, Ketubot, Nedarim, Nazir, Sotah, Gittin,
	Kiddushin, BavaKamma, BavaMetzia, BavaBatra, Sanhedrin, Makkot, Shevuot, AvodahZarah,
	Horayot, Zevachim, Menachot, Chullin, Bekhorot, Arakhin, Temurah, Keritot, Meilah, Niddah,
}

// dafYomiLengthsCycle1 and dafYomiLengthsCycle2 give each tractate's page
// count; they differ only for Shekalim (13 pages in the older cycle, 22 in
// the Vilna-pagination cycle used from cycle 2 onward).
var dafYomiLengthsCycle1 = [...]uint8{
	64, 157, 105, 121, 13, 88, 56, 40, 35, 31, 32, 29, 27, 122, 112, 91, 66, 49, 90, 82, 119,
	119, 176, 113, 24, 49, 76, 14, 120, 110, 142, 61, 34, 34, 28, 37, 73,
}

var dafYomiLengthsCycle2 = [...]uint8{
	64, 157, 105, 121, 22, 88, 56, 40, 35, 31, 32, 29, 27, 122, 112, 91, 66, 49, 90, 82, 119,
	119, 176, 113, 24, 49, 76, 14, 120, 110, 142, 61, 34, 34, 28, 37, 73,
}

const dafYomiCycle1Length = 2702
const dafYomiCycle2Length = 2711

// dafYomiCycle1Epoch and dafYomiCycle2Epoch are the first day of each
// cycle.
func dafYomiCycle1Epoch() (hebrew.Date, error) {
	return hebrew.FromYMD(5684, hebrew.Tishrei, 1)
}

func dafYomiCycle2Epoch() (hebrew.Date, error) {
	return hebrew.FromYMD(5735, hebrew.Tammuz, 15)
}

// DafYomi names a single Daf Yomi folio.
type DafYomi struct {
	Masechta Masechta
	Page     uint8
}

func (d DafYomi) String() string     { return fmt.Sprintf("%s %d", d.Masechta, d.Page) }
func (d DafYomi) Category() Category { return CategoryDafYomi }

func resolveDafYomi(dayOffset uint32, lengths [37]uint8) DafYomi {
	day := dayOffset
	for i, length := range lengths {
		if day+1 < uint32(length) {
			return DafYomi{Masechta: dafYomiOrder[i], Page: uint8(day) + 2}
		}
		day -= uint32(length) - 1
	}
	panic("dailystudy: day offset exceeds Daf Yomi cycle length")
}

// GenerateDafYomi appends one Daf Yomi entry for every day of the Hebrew
// year, resolved against whichever cycle epoch precedes the year (the
// cycle that started 15 Tammuz 5735 running from year 5736 onward).
func GenerateDafYomi(y hebrew.Year, out *Buffer) error {
	if y.Number() < 5684 {
		return nil
	}

	var epoch hebrew.Date
	var cycleLen uint32
	var lengths [37]uint8
	var err error
	if y.Number() <= 5735 {
		epoch, err = dafYomiCycle1Epoch()
		cycleLen = dafYomiCycle1Length
		lengths = dafYomiLengthsCycle1
	} else {
		epoch, err = dafYomiCycle2Epoch()
		cycleLen = dafYomiCycle2Length
		lengths = dafYomiLengthsCycle2
	}
	if err != nil {
		return err
	}

	rh, err := y.AndMonthDay(hebrew.Tishrei, 1)
	if err != nil {
		return err
	}
	baseOffset := daysBetween(epoch, rh)
	if baseOffset < 0 {
		return nil
	}

	for d := uint32(0); d < y.Length(); d++ {
		day, err := y.DateAtOffset(d)
		if err != nil {
			return err
		}
		cycleOffset := (uint32(baseOffset) + d) % cycleLen
		out.Append(Entry{Day: day, Name: resolveDafYomi(cycleOffset, lengths)})
	}
	return nil
}
