package events

import (
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// YomTov identifies one of the Torah-mandated festival days, including the
// days of Chol HaMoed implicit in the Sukkot/Pesach spans.
type YomTov uint8

const (
	RoshHashanah1 YomTov = iota
	RoshHashanah2
	YomKippur
	Sukkos1
	Sukkos2
	Sukkos3
	Sukkos4
	Sukkos5
	Sukkos6
	Sukkos7
	ShminiAtzeres
	SimchasTorah
	Pesach1
	Pesach2
	Pesach3
	Pesach4
	Pesach5
	Pesach6
	Pesach7
	Pesach8
	Shavuos1
	Shavuos2
)

var yomTovNames = [...]string{
	"RoshHashanah1", "RoshHashanah2", "YomKippur", "Sukkos1", "Sukkos2", "Sukkos3",
	"Sukkos4", "Sukkos5", "Sukkos6", "Sukkos7", "ShminiAtzeres", "SimchasTorah",
	"Pesach1", "Pesach2", "Pesach3", "Pesach4", "Pesach5", "Pesach6", "Pesach7",
	"Pesach8", "Shavuos1", "Shavuos2",
}

func (y YomTov) String() string      { return yomTovNames[y] }
func (y YomTov) Category() Category { return CategoryYomTov }

// candleTimes resolves the optional candle-lighting/tzeis pair for a day,
// applying fn only when supplied.
func candleTimes[T any](day hebrew.Date, shkiya, tzeis func(hebrew.Date) T) (*T, *T) {
	var cl, tz *T
	if shkiya != nil {
		v := shkiya(day)
		cl = &v
	}
	if tzeis != nil {
		v := tzeis(day)
		tz = &v
	}
	return cl, tz
}

// generateYomTov appends the fixed-date Yom Tov set, gated by Location, with
// candle-lighting/tzeis populated per the Diaspora second-day and
// Motzei-Shabbat rules observed for each entry.
func generateYomTov[T any](y hebrew.Year, loc Location, out *Buffer[T], shkiya, tzeis func(hebrew.Date) T) error {
	day := func(m hebrew.Month, d uint8) (hebrew.Date, error) { return y.AndMonthDay(m, d) }

	add := func(m hebrew.Month, d uint8, name YomTov, cl, tz *T) error {
		dd, err := day(m, d)
		if err != nil {
			return err
		}
		out.Append(Event[T]{Day: dd, Name: name, CandleLighting: cl, Tzeis: tz})
		return nil
	}

	rh1, err := day(hebrew.Tishrei, 1)
	if err != nil {
		return err
	}
	cl, tz := candleTimes(rh1, shkiya, tzeis)
	if err := add(hebrew.Tishrei, 1, RoshHashanah1, cl, tz); err != nil {
		return err
	}
	rh2, err := day(hebrew.Tishrei, 2)
	if err != nil {
		return err
	}
	cl, tz = candleTimes(rh2, shkiya, tzeis)
	if err := add(hebrew.Tishrei, 2, RoshHashanah2, cl, tz); err != nil {
		return err
	}

	yk, err := day(hebrew.Tishrei, 10)
	if err != nil {
		return err
	}
	cl, tz = candleTimes(yk, shkiya, tzeis)
	if err := add(hebrew.Tishrei, 10, YomKippur, cl, tz); err != nil {
		return err
	}

	sukkos1, err := day(hebrew.Tishrei, 15)
	if err != nil {
		return err
	}
	_, tz = candleTimes(sukkos1, shkiya, tzeis)
	cl = nil
	if sukkos1.Weekday() == civil.Sunday {
		_, motzei := candleTimes(sukkos1, nil, tzeis)
		cl = motzei
	} else {
		lighting, _ := candleTimes(sukkos1, shkiya, nil)
		cl = lighting
	}
	if err := add(hebrew.Tishrei, 15, Sukkos1, cl, tz); err != nil {
		return err
	}

	sukkos2, err := day(hebrew.Tishrei, 16)
	if err != nil {
		return err
	}
	_, tz = candleTimes(sukkos2, shkiya, tzeis)
	cl = nil
	if loc == Diaspora {
		if sukkos2.Weekday() == civil.Shabbos {
			lighting, _ := candleTimes(sukkos2, shkiya, nil)
			cl = lighting
		} else {
			_, motzei := candleTimes(sukkos2, nil, tzeis)
			cl = motzei
		}
	}
	if err := add(hebrew.Tishrei, 16, Sukkos2, cl, tz); err != nil {
		return err
	}

	for d, name := uint8(17), Sukkos3; d <= 21; d, name = d+1, name+1 {
		if err := add(hebrew.Tishrei, d, name, nil, nil); err != nil {
			return err
		}
	}

	sa, err := day(hebrew.Tishrei, 22)
	if err != nil {
		return err
	}
	cl, tz = candleTimes(sa, shkiya, tzeis)
	if err := add(hebrew.Tishrei, 22, ShminiAtzeres, cl, tz); err != nil {
		return err
	}

	if loc == Diaspora {
		st, err := day(hebrew.Tishrei, 23)
		if err != nil {
			return err
		}
		cl, tz = candleTimes(st, shkiya, tzeis)
		if err := add(hebrew.Tishrei, 23, SimchasTorah, cl, tz); err != nil {
			return err
		}
	}

	pesach1, err := day(hebrew.Nissan, 15)
	if err != nil {
		return err
	}
	_, tz = candleTimes(pesach1, shkiya, tzeis)
	if pesach1.Weekday() == civil.Sunday {
		_, motzei := candleTimes(pesach1, nil, tzeis)
		cl = motzei
	} else {
		lighting, _ := candleTimes(pesach1, shkiya, nil)
		cl = lighting
	}
	if err := add(hebrew.Nissan, 15, Pesach1, cl, tz); err != nil {
		return err
	}

	pesach2, err := day(hebrew.Nissan, 16)
	if err != nil {
		return err
	}
	_, tz = candleTimes(pesach2, shkiya, tzeis)
	cl = nil
	if loc == Diaspora {
		if pesach2.Weekday() == civil.Friday {
			lighting, _ := candleTimes(pesach2, shkiya, nil)
			cl = lighting
		} else {
			_, motzei := candleTimes(pesach2, nil, tzeis)
			cl = motzei
		}
	}
	if err := add(hebrew.Nissan, 16, Pesach2, cl, tz); err != nil {
		return err
	}

	for d, name := uint8(17), Pesach3; d <= 20; d, name = d+1, name+1 {
		if err := add(hebrew.Nissan, d, name, nil, nil); err != nil {
			return err
		}
	}

	pesach7, err := day(hebrew.Nissan, 21)
	if err != nil {
		return err
	}
	_, tz = candleTimes(pesach7, shkiya, tzeis)
	if pesach7.Weekday() == civil.Sunday {
		_, motzei := candleTimes(pesach7, nil, tzeis)
		cl = motzei
	} else {
		lighting, _ := candleTimes(pesach7, shkiya, nil)
		cl = lighting
	}
	if err := add(hebrew.Nissan, 21, Pesach7, cl, tz); err != nil {
		return err
	}

	if loc == Diaspora {
		if err := add(hebrew.Nissan, 22, Pesach8, nil, nil); err != nil {
			return err
		}
	}

	shavuos1, err := day(hebrew.Sivan, 6)
	if err != nil {
		return err
	}
	_, tz = candleTimes(shavuos1, shkiya, tzeis)
	if shavuos1.Weekday() == civil.Sunday {
		_, motzei := candleTimes(shavuos1, nil, tzeis)
		cl = motzei
	} else {
		lighting, _ := candleTimes(shavuos1, shkiya, nil)
		cl = lighting
	}
	if err := add(hebrew.Sivan, 6, Shavuos1, cl, tz); err != nil {
		return err
	}

	if loc == Diaspora {
		shavuos2, err := day(hebrew.Sivan, 7)
		if err != nil {
			return err
		}
		_, tz = candleTimes(shavuos2, shkiya, tzeis)
		if shavuos2.Weekday() == civil.Shabbos {
			lighting, _ := candleTimes(shavuos2, shkiya, nil)
			cl = lighting
		} else {
			_, motzei := candleTimes(shavuos2, nil, tzeis)
			cl = motzei
		}
		if err := add(hebrew.Sivan, 7, Shavuos2, cl, tz); err != nil {
			return err
		}
	}

	return nil
}

// yomTovDates returns just the Hebrew dates of the Location-gated Yom Tov
// set, with no candle-lighting computation, for use as a Shabbat-Parsha
// exclusion filter.
func yomTovDates(y hebrew.Year, loc Location) ([]hebrew.Date, error) {
	buf := NewBuffer[struct{}](24)
	if err := generateYomTov[struct{}](y, loc, buf, nil, nil); err != nil {
		return nil, err
	}
	days := make([]hebrew.Date, 0, buf.Len())
	for _, e := range buf.Events() {
		days = append(days, e.Day)
	}
	return days, nil
}
