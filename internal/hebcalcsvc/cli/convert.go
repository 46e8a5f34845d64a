package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

type convertResult struct {
	HebrewYear  uint32 `json:"hebrew_year"`
	HebrewMonth string `json:"hebrew_month"`
	HebrewDay   uint8  `json:"hebrew_day"`
	CivilYear   int    `json:"civil_year"`
	CivilMonth  int    `json:"civil_month"`
	CivilDay    int    `json:"civil_day"`
	Weekday     string `json:"weekday"`
}

func newConvertCmd(opts *globalOptions) *cobra.Command {
	var dateType string
	var dateFmt string

	cmd := &cobra.Command{
		Use:   "convert <date>",
		Short: "Convert a date between the civil and Hebrew calendars",
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

			var hd hebrew.Date
			switch strings.ToLower(dateType) {
			case "", "gregorian", "fuzzy":
				cd, err := parseCivilDate(args[0], dateFmt)
				if err != nil {
					return err
				}
				hd, err = hebrew.FromCivil(cd)
				if err != nil {
					return fmt.Errorf("convert date %s: %w", args[0], err)
				}
			case "hebrew":
				return fmt.Errorf("--type hebrew requires a Hebrew source date, not yet supported on this command")
			default:
				return fmt.Errorf("unknown --type %q", dateType)
			}

			result := convertResult{
				HebrewYear:  hd.YearNumber(),
				HebrewMonth: monthName(tag, hd.Month()),
				HebrewDay:   hd.Day(),
				CivilYear:   hd.ToCivil().Year(),
				CivilMonth:  hd.ToCivil().Month(),
				CivilDay:    hd.ToCivil().Day(),
				Weekday:     hd.Weekday().String(),
			}

			switch mode {
			case printJSON:
				return writeJSON(cmd.OutOrStdout(), result)
			case printPretty:
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) — %s\n", hebrewDateString(tag, hd), result.Weekday, prettySince(hd.ToCivil()))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), hebrewDateString(tag, hd))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateType, "type", "gregorian", "source date type: gregorian|fuzzy (fuzzy is parsed as gregorian; hebrew is rejected)")
	cmd.Flags().StringVar(&dateFmt, "datefmt", "ISO", "civil date layout: ISO|US|UK")
	return cmd
}

// parseCivilDate parses raw according to the requested layout: ISO
// (YYYY-MM-DD), US (MM/DD/YYYY), or UK (DD/MM/YYYY).
func parseCivilDate(raw, layout string) (civil.Date, error) {
	var sep string
	switch strings.ToUpper(layout) {
	case "", "ISO":
		sep = "-"
	case "US", "UK":
		sep = "/"
	default:
		return civil.Date{}, fmt.Errorf("unknown --datefmt %q", layout)
	}

	parts := strings.Split(raw, sep)
	if len(parts) != 3 {
		return civil.Date{}, fmt.Errorf("date %q does not match --datefmt %s", raw, layout)
	}

	var y, m, d int
	var err error
	switch strings.ToUpper(layout) {
	case "", "ISO":
		y, err = atoi(parts[0])
		if err == nil {
			m, err = atoi(parts[1])
		}
		if err == nil {
			d, err = atoi(parts[2])
		}
	case "US":
		m, err = atoi(parts[0])
		if err == nil {
			d, err = atoi(parts[1])
		}
		if err == nil {
			y, err = atoi(parts[2])
		}
	case "UK":
		d, err = atoi(parts[0])
		if err == nil {
			m, err = atoi(parts[1])
		}
		if err == nil {
			y, err = atoi(parts[2])
		}
	}
	if err != nil {
		return civil.Date{}, fmt.Errorf("parse date %q: %w", raw, err)
	}

	return civil.FromYMD(y, m, d)
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
