package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-datemath/datemath"
	"github.com/ngrash/go-datemath/instant"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <amount> <unit>",
		Short: "Shift a date forward by a signed number of calendar units",
		Long: `Shift a date forward by a signed number of calendar units.

Year and month steps carry overflow and clamp the day-of-month to the
destination month, so Jan 31 plus one month is the last day of February.
Day and finer steps are flat offsets.

Example:
  datecalc add 2025-01-31T00:00:00Z 1 month --in UTC`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(rootOpts, cmd, args, 1)
		},
	}
}

// NewSubCommand creates the sub command, the mirror of add.
func NewSubCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sub <date> <amount> <unit>",
		Short: "Shift a date backward by a signed number of calendar units",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(rootOpts, cmd, args, -1)
		},
	}
}

func runShift(opts *RootOptions, cmd *cobra.Command, args []string, sign float64) error {
	loc, err := opts.Location()
	if err != nil {
		return err
	}
	d, err := parseDateArg(args[0], loc)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[1], err)
	}
	unit, err := instant.ParseUnit(args[2])
	if err != nil {
		return err
	}

	r := datemath.AddIn(d, sign*amount, unit, loc)
	if !r.Valid() {
		return fmt.Errorf("result is not a representable date")
	}
	return writeInstant(cmd, opts.Output, r)
}
