package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-datemath/tzoffset"
)

type tzResult struct {
	Zone          string `json:"zone" yaml:"zone"`
	OffsetMinutes int    `json:"offset_minutes" yaml:"offset_minutes"`
}

// NewTZCommand creates the tz command.
func NewTZCommand(rootOpts *RootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "tz <zone>",
		Short: "Resolve a timezone to its UTC offset in minutes",
		Long: `Resolve a timezone name or fixed abbreviation to its UTC offset in
minutes at a reference date. Zones observing daylight saving yield
different offsets across the year; the default reference is now.

Example:
  datecalc tz America/New_York --at 2025-07-01T00:00:00Z`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := tzoffset.Normalize(args[0])
			if !ok {
				return fmt.Errorf("unknown timezone %q", args[0])
			}

			var ref any
			if at != "" {
				loc, err := rootOpts.Location()
				if err != nil {
					return err
				}
				i, err := parseDateArg(at, loc)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				ref = i
			}

			minutes, ok := tzoffset.Offset(name, ref)
			if !ok {
				return fmt.Errorf("cannot resolve offset of %q", args[0])
			}
			r := tzResult{Zone: name, OffsetMinutes: minutes}
			return writeResult(cmd, rootOpts.Output, r, fmt.Sprintf("%s %d", r.Zone, r.OffsetMinutes))
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "reference date, default now")

	return cmd
}
