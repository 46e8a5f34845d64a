package httpapi

import (
	"fmt"
	"strings"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/dailystudy"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/events"
)

var eventCategoryByName = map[string]events.Category{
	"yomtov":           events.CategoryYomTov,
	"chol":             events.CategoryChol,
	"parsha":           events.CategoryParsha,
	"specialparsha":    events.CategorySpecialParsha,
	"omer":             events.CategoryOmer,
	"minorholiday":     events.CategoryMinorHoliday,
	"shabbatmevarchim": events.CategoryShabbatMevarchim,
	"israeli":          events.CategoryIsraeli,
	"chabad":           events.CategoryChabad,
}

var allEventCategories = []events.Category{
	events.CategoryYomTov, events.CategoryChol, events.CategoryParsha,
	events.CategorySpecialParsha, events.CategoryOmer, events.CategoryMinorHoliday,
	events.CategoryShabbatMevarchim, events.CategoryIsraeli, events.CategoryChabad,
}

// parseEventCategories parses a comma-separated `categories` query value;
// an empty string requests every category.
func parseEventCategories(raw string) ([]events.Category, error) {
	if raw == "" {
		return allEventCategories, nil
	}
	var out []events.Category
	for _, name := range strings.Split(raw, ",") {
		cat, ok := eventCategoryByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown event category %q", name)
		}
		out = append(out, cat)
	}
	return out, nil
}

var dailyStudyCategoryByName = map[string]dailystudy.Category{
	"dafyomi":             dailystudy.CategoryDafYomi,
	"yerushalmiyomi":      dailystudy.CategoryYerushalmiYomi,
	"rambamonechapter":    dailystudy.CategoryRambamOneChapter,
	"rambamthreechapters": dailystudy.CategoryRambamThreeChapters,
}

var allDailyStudyCategories = []dailystudy.Category{
	dailystudy.CategoryDafYomi, dailystudy.CategoryYerushalmiYomi,
	dailystudy.CategoryRambamOneChapter, dailystudy.CategoryRambamThreeChapters,
}

// parseDailyStudyCategories parses a comma-separated `categories` query
// value for the daily-study endpoint; an empty string requests every cycle.
func parseDailyStudyCategories(raw string) ([]dailystudy.Category, error) {
	if raw == "" {
		return allDailyStudyCategories, nil
	}
	var out []dailystudy.Category
	for _, name := range strings.Split(raw, ",") {
		cat, ok := dailyStudyCategoryByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown daily-study category %q", name)
		}
		out = append(out, cat)
	}
	return out, nil
}
