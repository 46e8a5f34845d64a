// Command hebcal is the command-line surface for the Hebrew calendar
// computation engine: date conversion, event listings, and daily-study
// cycle lookups.
package main

import (
	"os"

	"github.com/jcom-dev/hebcal-engine/internal/hebcalcsvc/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
