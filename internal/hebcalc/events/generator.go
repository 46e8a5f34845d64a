package events

import "github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"

// Options configures a Generate call: which event categories to populate,
// which location's Yom Tov/Parsha rules to apply, and (for the year-shape
// dependent Israeli holidays) whether to use the fixed historical dates
// instead of the Shabbat-avoidance shift.
type Options struct {
	Categories []Category
	Location   Location
	ExactDays  bool
}

func (o Options) wants(c Category) bool {
	for _, want := range o.Categories {
		if want == c {
			return true
		}
	}
	return false
}

// Generate populates out with every requested category's events for the
// given Hebrew year. shkiya and tzeis compute candle-lighting/Havdalah
// instants for Yom Tov entries; pass nil for both if the caller has no use
// for them.
func Generate[T any](y hebrew.Year, opts Options, out *Buffer[T], shkiya, tzeis func(hebrew.Date) T) error {
	var yomTovDatesCache []hebrew.Date
	needYomTovDates := opts.wants(CategoryParsha)

	if opts.wants(CategoryYomTov) || needYomTovDates {
		if opts.wants(CategoryYomTov) {
			if err := generateYomTov(y, opts.Location, out, shkiya, tzeis); err != nil {
				return err
			}
		}
		if needYomTovDates {
			dates, err := yomTovDates(y, opts.Location)
			if err != nil {
				return err
			}
			yomTovDatesCache = dates
		}
	}

	if opts.wants(CategoryChol) {
		if err := generateChol(y, out); err != nil {
			return err
		}
	}

	if opts.wants(CategoryParsha) {
		if err := generateParsha(y, opts.Location, yomTovDatesCache, out); err != nil {
			return err
		}
	}

	if opts.wants(CategorySpecialParsha) {
		if err := generateSpecialParsha(y, out); err != nil {
			return err
		}
	}

	if opts.wants(CategoryOmer) {
		if err := generateOmer(y, out); err != nil {
			return err
		}
	}

	if opts.wants(CategoryMinorHoliday) {
		if err := generateMinorHoliday(y, out); err != nil {
			return err
		}
	}

	if opts.wants(CategoryShabbatMevarchim) {
		if err := generateShabbatMevarchim(y, out); err != nil {
			return err
		}
	}

	if opts.wants(CategoryIsraeli) {
		if err := generateIsraeli(y, opts.ExactDays, out); err != nil {
			return err
		}
	}

	if opts.wants(CategoryChabad) {
		if err := generateChabad(y, out); err != nil {
			return err
		}
	}

	return nil
}
