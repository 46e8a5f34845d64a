package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/events"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

type listEntry struct {
	HebrewYear  uint32 `json:"hebrew_year"`
	HebrewMonth string `json:"hebrew_month"`
	HebrewDay   uint8  `json:"hebrew_day"`
	Name        string `json:"name"`
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var typeName string
	var locationName string
	var years int
	var show string
	var noSort bool

	cmd := &cobra.Command{
		Use:   "list <year>",
		Short: "List calendar events for one or more Hebrew years",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := parseLanguage(opts.language)
			if err != nil {
				return err
			}
			mode, err := parsePrintMode(opts.print)
			if err != nil {
				return err
			}

			startYear, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("parse year %q: %w", args[0], err)
			}

			loc := events.Diaspora
			if strings.EqualFold(locationName, "Israel") {
				loc = events.Israel
			}

			cats, err := categoriesFromShow(show)
			if err != nil {
				return err
			}
			_ = typeName // --type reserved for future event/daily-study selection; categories cover it today

			if years <= 0 {
				years = 1
			}

			var raw []events.Event[struct{}]
			for i := 0; i < years; i++ {
				y, err := hebrew.NewYear(uint32(startYear) + uint32(i))
				if err != nil {
					return fmt.Errorf("construct year %d: %w", uint32(startYear)+uint32(i), err)
				}

				out := events.NewBuffer[struct{}](256)
				if err := events.Generate[struct{}](y, events.Options{Categories: cats, Location: loc}, out, nil, nil); err != nil {
					return fmt.Errorf("generate schedule for %d: %w", y.Number(), err)
				}
				raw = append(raw, out.Events()...)
			}

			if !noSort {
				sort.SliceStable(raw, func(i, j int) bool {
					return raw[i].Day.ToCivil().Before(raw[j].Day.ToCivil())
				})
			}

			entries := make([]listEntry, len(raw))
			for i, e := range raw {
				entries[i] = listEntry{
					HebrewYear:  e.Day.YearNumber(),
					HebrewMonth: monthName(tag, e.Day.Month()),
					HebrewDay:   e.Day.Day(),
					Name:        e.Name.String(),
				}
			}

			switch mode {
			case printJSON:
				return writeJSON(cmd.OutOrStdout(), entries)
			default:
				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%d %s %d: %s\n", e.HebrewDay, e.HebrewMonth, e.HebrewYear, e.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "reserved; category filtering is via --show")
	cmd.Flags().StringVar(&locationName, "location", "Chul", "Israel|Chul")
	cmd.Flags().IntVar(&years, "years", 1, "number of consecutive Hebrew years to list")
	cmd.Flags().StringVar(&show, "show", "", "comma-separated category names to include (default: all)")
	cmd.Flags().BoolVar(&noSort, "no-sort", false, "skip the chronological sort pass")
	return cmd
}

var listCategoryByName = map[string]events.Category{
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

func categoriesFromShow(show string) ([]events.Category, error) {
	if show == "" {
		return []events.Category{
			events.CategoryYomTov, events.CategoryChol, events.CategoryParsha,
			events.CategorySpecialParsha, events.CategoryOmer, events.CategoryMinorHoliday,
			events.CategoryShabbatMevarchim, events.CategoryIsraeli, events.CategoryChabad,
		}, nil
	}
	var out []events.Category
	for _, name := range strings.Split(show, ",") {
		cat, ok := listCategoryByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown --show category %q", name)
		}
		out = append(out, cat)
	}
	return out, nil
}
