// Package cli implements the hebcal command-line surface: date conversion,
// per-year event listings, and daily-study cycle listings, sharing the core
// hebrew/events/dailystudy packages with the HTTP service.
package cli

import (
	"github.com/spf13/cobra"
)

// globalOptions holds the flags shared across every subcommand.
type globalOptions struct {
	print    string
	language string
}

// NewRootCmd builds the hebcal command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "hebcal",
		Short:         "Hebrew calendar conversion, event listing, and daily-study lookup",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&opts.print, "print", "regular", "output mode: regular|pretty|json")
	root.PersistentFlags().StringVar(&opts.language, "language", "en_US", "locale for rendered names: en_US|he_IL")

	root.AddCommand(newConvertCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newDailyStudyCmd(opts))

	return root
}
