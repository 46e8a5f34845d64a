// Package precompute warms the schedule cache for a range of Hebrew years
// ahead of first request, bounding concurrency the way the reference
// service bounds its own bulk background jobs.
package precompute

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/dailystudy"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/events"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
	svccache "github.com/jcom-dev/hebcal-engine/internal/hebcalcsvc/cache"
)

var allEventCategories = []events.Category{
	events.CategoryYomTov, events.CategoryChol, events.CategoryParsha,
	events.CategorySpecialParsha, events.CategoryOmer, events.CategoryMinorHoliday,
	events.CategoryShabbatMevarchim, events.CategoryIsraeli, events.CategoryChabad,
}

var allStudyCategories = []dailystudy.Category{
	dailystudy.CategoryDafYomi, dailystudy.CategoryYerushalmiYomi,
	dailystudy.CategoryRambamOneChapter, dailystudy.CategoryRambamThreeChapters,
}

var allCategoryNames = []string{
	"yomtov", "chol", "parsha", "specialparsha", "omer", "minorholiday",
	"shabbatmevarchim", "israeli", "chabad",
}

var allStudyCategoryNames = []string{
	"dafyomi", "yerushalmiyomi", "rambamonechapter", "rambamthreechapters",
}

// Range resolves and caches the default (Diaspora) schedule and daily-study
// listing for every year in [start, end], running up to workers years
// concurrently. A failure for any individual year is logged and skipped
// rather than aborting the whole range.
func Range(ctx context.Context, c *svccache.Cache, start, end uint32, workers int) error {
	if c == nil || start == 0 || end < start {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for year := start; year <= end; year++ {
		year := year
		g.Go(func() error {
			if err := warmYear(ctx, c, year); err != nil {
				slog.Warn("precompute failed", "year", year, "error", err)
			}
			return nil
		})
	}

	return g.Wait()
}

func warmYear(ctx context.Context, c *svccache.Cache, year uint32) error {
	y, err := hebrew.NewYear(year)
	if err != nil {
		return fmt.Errorf("construct year %d: %w", year, err)
	}

	out := events.NewBuffer[struct{}](256)
	if err := events.Generate[struct{}](y, events.Options{Categories: allEventCategories, Location: events.Diaspora}, out, nil, nil); err != nil {
		return fmt.Errorf("generate schedule for %d: %w", year, err)
	}
	if err := c.SetSchedule(ctx, year, "diaspora", allCategoryNames, out.Events()); err != nil {
		return fmt.Errorf("cache schedule for %d: %w", year, err)
	}

	studyOut := dailystudy.NewBuffer(256)
	if err := dailystudy.Generate(y, dailystudy.Options{Categories: allStudyCategories}, studyOut); err != nil {
		return fmt.Errorf("generate daily study for %d: %w", year, err)
	}
	if err := c.SetDailyStudy(ctx, year, allStudyCategoryNames, studyOut.Entries()); err != nil {
		return fmt.Errorf("cache daily study for %d: %w", year, err)
	}

	slog.Debug("precomputed year", "year", year)
	return nil
}
