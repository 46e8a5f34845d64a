package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/civil"
	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// printMode selects how a resolved result is rendered to stdout.
type printMode string

const (
	printRegular printMode = "regular"
	printPretty  printMode = "pretty"
	printJSON    printMode = "json"
)

func parsePrintMode(raw string) (printMode, error) {
	switch printMode(raw) {
	case "", printRegular:
		return printRegular, nil
	case printPretty, printJSON:
		return printMode(raw), nil
	default:
		return "", fmt.Errorf("unknown --print mode %q (want regular, pretty, or json)", raw)
	}
}

// hebrewDateString renders a Hebrew date in the requested locale.
func hebrewDateString(tag language.Tag, d hebrew.Date) string {
	return fmt.Sprintf("%d %s %d", d.Day(), monthName(tag, d.Month()), d.YearNumber())
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// prettySince renders a civil instant relative to now, the way --print
// pretty annotates a converted date ("3 years ago", "in 2 months").
func prettySince(d civil.Date) string {
	t := time.Date(d.Year(), time.Month(d.Month()), d.Day(), d.Hour(), d.Minute(), d.Second(), 0, time.UTC)
	return humanize.Time(t)
}
