package events

import (
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// Parsha identifies a weekly Torah portion, including the seven portions
// that are sometimes read paired and sometimes split across two Shabbatot.
type Parsha uint8

const (
	Vayelech Parsha = iota
	Haazinu
	Bereishis
	Noach
	LechLecha
	Vayeira
	ChayeiSara
	Toldos
	Vayetzei
	Vayishlach
	Vayeshev
	Miketz
	Vayigash
	Vayechi
	Shemos
	Vaeira
	Bo
	Beshalach
	Yisro
	Mishpatim
	Terumah
	Tetzaveh
	KiSisa
	VayakhelPikudei
	Vayakhel
	Pikudei
	Vayikra
	Tzav
	Shemini
	TazriyaMetzorah
	Tazriya
	Metzorah
	AchareiMosKedoshim
	AchareiMos
	Kedoshim
	Emor
	BeharBechukosai
	Behar
	Bechukosai
	Bamidbar
	Naso
	Behaaloscha
	Shlach
	Korach
	ChukasBalak
	Chukas
	Balak
	Pinchas
	MatosMaasei
	Matos
	Maasei
	Devarim
	Vaeschanan
	Eikev
	Reeh
	Shoftim
	KiSeitzei
	KiSavoh
	NitzavimVayelech
	Nitzavim
)

var parshaNames = [...]string{
	"Vayelech", "Haazinu", "Bereishis", "Noach", "LechLecha", "Vayeira", "ChayeiSara",
	"Toldos", "Vayetzei", "Vayishlach", "Vayeshev", "Miketz", "Vayigash", "Vayechi",
	"Shemos", "Vaeira", "Bo", "Beshalach", "Yisro", "Mishpatim", "Terumah", "Tetzaveh",
	"KiSisa", "VayakhelPikudei", "Vayakhel", "Pikudei", "Vayikra", "Tzav", "Shemini",
	"TazriyaMetzorah", "Tazriya", "Metzorah", "AchareiMosKedoshim", "AchareiMos",
	"Kedoshim", "Emor", "BeharBechukosai", "Behar", "Bechukosai", "Bamidbar", "Naso",
	"Behaaloscha", "Shlach", "Korach", "ChukasBalak", "Chukas", "Balak", "Pinchas",
	"MatosMaasei", "Matos", "Maasei", "Devarim", "Vaeschanan", "Eikev", "Reeh",
	"Shoftim", "KiSeitzei", "KiSavoh", "NitzavimVayelech", "Nitzavim",
}

func (p Parsha) String() string     { return parshaNames[p] }
func (p Parsha) Category() Category { return CategoryParsha }

var haazinuKiSisa = []Parsha{
	Haazinu, Bereishis, Noach, LechLecha, Vayeira, ChayeiSara, Toldos, Vayetzei,
	Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaeira, Bo, Beshalach,
	Yisro, Mishpatim, Terumah, Tetzaveh, KiSisa,
}
var vayikraShmini = []Parsha{Vayikra, Tzav, Shemini}
var bamidbarKorach = []Parsha{Bamidbar, Naso, Behaaloscha, Shlach, Korach}
var devarimKisavo = []Parsha{Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavoh}

// shabbatDates returns every Shabbat-weekday Hebrew date in the year,
// excluding days already claimed by a Yom Tov.
func shabbatDates(y hebrew.Year, yomTov []hebrew.Date) ([]hebrew.Date, error) {
	startOffset := (int(civil.Shabbos) - int(y.RoshHashanaWeekday()) + 7) % 7
	cur := uint32(startOffset)
	end := y.Length()

	var dates []hebrew.Date
	for cur < end {
		d, err := y.DateAtOffset(cur)
		if err != nil {
			return nil, err
		}
		excluded := false
		for _, yt := range yomTov {
			if yt.Equal(d) {
				excluded = true
				break
			}
		}
		if !excluded {
			dates = append(dates, d)
		}
		cur += 7
	}
	return dates, nil
}

// generateParsha zips the split-dependent 54-slot parsha sequence against
// this year's Shabbat dates (with Yom Tov days excluded).
func generateParsha[T any](y hebrew.Year, loc Location, yomTov []hebrew.Date, out *Buffer[T]) error {
	dates, err := shabbatDates(y, yomTov)
	if err != nil {
		return err
	}

	rh := y.RoshHashanaWeekday()
	rhNext := y.NextRoshHashanaWeekday()
	yearLen := y.Length()
	leap := y.IsLeap()

	splitTazriya := leap
	splitAcharei := leap
	splitBehar := leap
	if loc == Israel {
		splitBehar = splitBehar || (yearLen == 354 && rh == civil.Thursday)
	}
	splitVayakhel := leap || (yearLen == 355 && rh == civil.Thursday)
	splitChukas := loc == Israel || rhNext != civil.Shabbos
	splitMattos := (rh == civil.Thursday && (yearLen == 383 || yearLen == 385)) ||
		(loc == Israel && ((rh == civil.Monday && yearLen == 385) || (rh == civil.Tuesday && yearLen == 384)))
	splitNitzavim := rh == civil.Monday || rh == civil.Tuesday
	splitNitzavimNextYear := rhNext == civil.Monday || rhNext == civil.Tuesday

	seq := make([]Parsha, 0, 60)
	if splitNitzavim {
		seq = append(seq, Vayelech)
	}
	seq = append(seq, haazinuKiSisa...)

	if splitVayakhel {
		seq = append(seq, Vayakhel, Pikudei)
	} else {
		seq = append(seq, VayakhelPikudei)
	}
	seq = append(seq, vayikraShmini...)
	if splitTazriya {
		seq = append(seq, Tazriya, Metzorah)
	} else {
		seq = append(seq, TazriyaMetzorah)
	}
	if splitAcharei {
		seq = append(seq, AchareiMos, Kedoshim)
	} else {
		seq = append(seq, AchareiMosKedoshim)
	}
	seq = append(seq, Emor)
	if splitBehar {
		seq = append(seq, Behar, Bechukosai)
	} else {
		seq = append(seq, BeharBechukosai)
	}
	seq = append(seq, bamidbarKorach...)
	if splitChukas {
		seq = append(seq, Chukas, Balak)
	} else {
		seq = append(seq, ChukasBalak)
	}
	seq = append(seq, Pinchas)
	if splitMattos {
		seq = append(seq, Matos, Maasei)
	} else {
		seq = append(seq, MatosMaasei)
	}
	seq = append(seq, devarimKisavo...)
	if splitNitzavimNextYear {
		seq = append(seq, Nitzavim)
	} else {
		seq = append(seq, NitzavimVayelech)
	}

	n := len(dates)
	if len(seq) < n {
		n = len(seq)
	}
	for i := 0; i < n; i++ {
		out.Append(Event[T]{Day: dates[i], Name: seq[i]})
	}
	return nil
}
