// Package cli implements the datecalc command tree.
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-datemath/instant"
)

// RootOptions holds the persistent flags shared by all subcommands.
type RootOptions struct {
	// Output selects the result encoding: text, json or yaml.
	Output string
	// In names the location used for field-wise operations and for
	// interpreting zoneless date arguments. "Local" means the host zone.
	In string
}

// Location resolves the --in flag.
func (o *RootOptions) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.In)
	if err != nil {
		return nil, fmt.Errorf("--in: %w", err)
	}
	return loc, nil
}

// NewRootCommand creates the datecalc root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "datecalc",
		Short:         "Calendar arithmetic and timezone offsets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "text", "output format: text, json or yaml")
	cmd.PersistentFlags().StringVar(&opts.In, "in", "Local", "location for field-wise operations, e.g. UTC or Europe/Berlin")

	cmd.AddCommand(
		NewAddCommand(opts),
		NewSubCommand(opts),
		NewStartOfCommand(opts),
		NewCompareCommand(opts),
		NewBetweenCommand(opts),
		NewTZCommand(opts),
		NewBoundsCommand(opts),
	)

	return cmd
}

// parseDateArg turns a command line argument into a date input: a decimal
// integer is a millisecond timestamp, anything else must parse as ISO-8601.
// Zoneless strings are read in loc.
func parseDateArg(arg string, loc *time.Location) (instant.Instant, error) {
	if ms, err := strconv.ParseInt(arg, 10, 64); err == nil {
		i := instant.Of(ms)
		if !i.Valid() {
			return instant.Invalid(), fmt.Errorf("timestamp %q is out of range", arg)
		}
		return i, nil
	}
	i := instant.ParseISOIn(arg, loc)
	if !i.Valid() {
		return instant.Invalid(), fmt.Errorf("%q is not a date", arg)
	}
	return i, nil
}
