package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/dailystudy"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

type studyEntry struct {
	HebrewYear  uint32 `json:"hebrew_year"`
	HebrewMonth string `json:"hebrew_month"`
	HebrewDay   uint8  `json:"hebrew_day"`
	Name        string `json:"name"`
}

var studyCategoryByName = map[string]dailystudy.Category{
	"dafyomi":             dailystudy.CategoryDafYomi,
	"yerushalmiyomi":      dailystudy.CategoryYerushalmiYomi,
	"rambamonechapter":    dailystudy.CategoryRambamOneChapter,
	"rambamthreechapters": dailystudy.CategoryRambamThreeChapters,
}

func newDailyStudyCmd(opts *globalOptions) *cobra.Command {
	var show string

	cmd := &cobra.Command{
		Use:   "daily-study <year>",
		Short: "List daily-study cycle resolutions for a Hebrew year",
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

			yearNum, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("parse year %q: %w", args[0], err)
			}

			cats, err := studyCategoriesFromShow(show)
			if err != nil {
				return err
			}

			y, err := hebrew.NewYear(uint32(yearNum))
			if err != nil {
				return fmt.Errorf("construct year %d: %w", yearNum, err)
			}

			out := dailystudy.NewBuffer(256)
			if err := dailystudy.Generate(y, dailystudy.Options{Categories: cats}, out); err != nil {
				return fmt.Errorf("generate daily study for %d: %w", yearNum, err)
			}

			raw := append([]dailystudy.Entry(nil), out.Entries()...)
			sort.SliceStable(raw, func(i, j int) bool {
				return raw[i].Day.ToCivil().Before(raw[j].Day.ToCivil())
			})

			entries := make([]studyEntry, len(raw))
			for i, e := range raw {
				entries[i] = studyEntry{
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

	cmd.Flags().StringVar(&show, "show", "", "comma-separated cycle names to include (default: all)")
	return cmd
}

func studyCategoriesFromShow(show string) ([]dailystudy.Category, error) {
	if show == "" {
		return []dailystudy.Category{
			dailystudy.CategoryDafYomi, dailystudy.CategoryYerushalmiYomi,
			dailystudy.CategoryRambamOneChapter, dailystudy.CategoryRambamThreeChapters,
		}, nil
	}
	var out []dailystudy.Category
	for _, name := range strings.Split(show, ",") {
		cat, ok := studyCategoryByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown --show cycle %q", name)
		}
		out = append(out, cat)
	}
	return out, nil
}
