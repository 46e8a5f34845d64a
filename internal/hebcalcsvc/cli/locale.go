package cli

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"
)

// hebrewMonthNamesHe gives the Hebrew-script rendering of each month slot,
// used when --language he_IL is selected; the core hebrew package only
// knows the transliterated English names, which stay locale-neutral.
var hebrewMonthNamesHe = [...]string{
	hebrew.Tishrei: "תשרי",
	hebrew.Cheshvan: "חשוון",
	hebrew.Kislev:  "כסלו",
	hebrew.Teves:   "טבת",
	hebrew.Shvat:   "שבט",
	hebrew.Adar:    "אדר",
	hebrew.Adar1:   "אדר א",
	hebrew.Adar2:   "אדר ב",
	hebrew.Nissan:  "ניסן",
	hebrew.Iyar:    "אייר",
	hebrew.Sivan:   "סיוון",
	hebrew.Tammuz:  "תמוז",
	hebrew.Av:      "אב",
	hebrew.Elul:    "אלול",
}

// parseLanguage validates the --language flag against the two locales this
// command understands; it accepts anything BCP 47 parses so "he"/"he-IL"
// also resolve to the Hebrew locale.
func parseLanguage(raw string) (language.Tag, error) {
	if raw == "" {
		raw = "en-US"
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, fmt.Errorf("parse language %q: %w", raw, err)
	}
	return tag, nil
}

func monthName(tag language.Tag, m hebrew.Month) string {
	base, _ := tag.Base()
	if base.String() == "he" {
		if int(m) < len(hebrewMonthNamesHe) && hebrewMonthNamesHe[m] != "" {
			return hebrewMonthNamesHe[m]
		}
	}
	return m.String()
}
