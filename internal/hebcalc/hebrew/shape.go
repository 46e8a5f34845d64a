package hebrew

import "github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"

// YearShape is the traditional 14-valued "keviyah" classification of a
// year by (Rosh Hashana weekday, Cheshvan/Kislev deficient-regular-complete
// pattern, Pesach weekday). Seven non-leap shapes, seven leap shapes.
type YearShape uint8

const (
	BaChaG YearShape = iota // non-leap, RH Mon, deficient (353), Pesach Tue
	BaShaH                  // non-leap, RH Mon, complete (355), Pesach Thu
	GaChaH                  // non-leap, RH Tue, regular (354), Pesach Thu
	HaKaZ                   // non-leap, RH Thu, regular (354), Pesach Sat
	HaShA                   // non-leap, RH Thu, complete (355), Pesach Sun
	ZaChA                   // non-leap, RH Sat, deficient (353), Pesach Sun
	ZaShaG                  // non-leap, RH Sat, complete (355), Pesach Tue
	BaChaH                  // leap, RH Mon, deficient (383), Pesach Thu
	BaShaZ                  // leap, RH Mon, complete (385), Pesach Sat
	GaKaZ                   // leap, RH Tue, regular (384), Pesach Sat
	HaChA                   // leap, RH Thu, deficient (383), Pesach Sun
	HaShaG                  // leap, RH Thu, complete (385), Pesach Tue
	ZaChaG                  // leap, RH Sat, deficient (383), Pesach Tue
	ZaShaH                  // leap, RH Sat, complete (385), Pesach Thu
)

var shapeNames = [...]string{
	"BaChaG", "BaShaH", "GaChaH", "HaKaZ", "HaShA", "ZaChA", "ZaShaG",
	"BaChaH", "BaShaZ", "GaKaZ", "HaChA", "HaShaG", "ZaChaG", "ZaShaH",
}

func (s YearShape) String() string {
	if int(s) >= len(shapeNames) {
		return "Unknown"
	}
	return shapeNames[s]
}

// monthPattern classifies a year length into deficient/regular/complete.
type monthPattern uint8

const (
	patternDeficient monthPattern = iota // Cheshvan 29, Kislev 29
	patternRegular                       // Cheshvan 29, Kislev 30
	patternComplete                      // Cheshvan 30, Kislev 30
)

func lengthPattern(yearLen uint32) monthPattern {
	switch yearLen {
	case 353, 383:
		return patternDeficient
	case 354, 384:
		return patternRegular
	case 355, 385:
		return patternComplete
	default:
		panic("hebrew: impossible year length")
	}
}

type shapeKey struct {
	dowRH   civil.Weekday
	pattern monthPattern
	dowPes  civil.Weekday
	leap    bool
}

// Built from the 14 astronomically valid (RH weekday, month-length pattern,
// leap status) combinations; Pesach weekday follows deterministically from
// RH weekday plus a pattern-dependent, leap-dependent fixed offset (verified
// against known historical RH/Pesach weekdays for 5779 and 5780).
var shapeTable = map[shapeKey]YearShape{
	{civil.Monday, patternDeficient, civil.Tuesday, false}:  BaChaG,
	{civil.Monday, patternComplete, civil.Thursday, false}:  BaShaH,
	{civil.Tuesday, patternRegular, civil.Thursday, false}:  GaChaH,
	{civil.Thursday, patternRegular, civil.Shabbos, false}:  HaKaZ,
	{civil.Thursday, patternComplete, civil.Sunday, false}:  HaShA,
	{civil.Shabbos, patternDeficient, civil.Sunday, false}:  ZaChA,
	{civil.Shabbos, patternComplete, civil.Tuesday, false}:  ZaShaG,

	{civil.Monday, patternDeficient, civil.Thursday, true}: BaChaH,
	{civil.Monday, patternComplete, civil.Shabbos, true}:   BaShaZ,
	{civil.Tuesday, patternRegular, civil.Shabbos, true}:   GaKaZ,
	{civil.Thursday, patternDeficient, civil.Sunday, true}: HaChA,
	{civil.Thursday, patternComplete, civil.Tuesday, true}: HaShaG,
	{civil.Shabbos, patternDeficient, civil.Tuesday, true}: ZaChaG,
	{civil.Shabbos, patternComplete, civil.Thursday, true}: ZaShaH,
}

// classifyShape derives the YearShape for an already-constructed Year by
// looking up (RH weekday, length pattern, Pesach weekday, leap status) in
// the fixed keviyah table. The combination is always present for any
// astronomically valid year; a missing entry is a programming error.
func classifyShape(y Year) YearShape {
	pesach, err := y.AndMonthDay(Nissan, 15)
	if err != nil {
		panic(err)
	}
	key := shapeKey{
		dowRH:   y.RoshHashanaWeekday(),
		pattern: lengthPattern(y.Length()),
		dowPes:  pesach.Weekday(),
		leap:    y.IsLeap(),
	}
	shape, ok := shapeTable[key]
	if !ok {
		panic("hebrew: no YearShape matches this year's (RH weekday, pattern, Pesach weekday, leap)")
	}
	return shape
}
