package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-datemath/datemath"
	"github.com/ngrash/go-datemath/instant"
)

// NewStartOfCommand creates the startof command.
func NewStartOfCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "startof <date> <unit>",
		Short: "Truncate a date to the start of a calendar unit",
		Long: `Truncate a date to the start of the calendar unit containing it.

Truncation is field-wise in the --in location: startof day is that
location's midnight even across daylight-saving transitions.

Example:
  datecalc startof 2024-06-15T10:30:45.123Z month --in UTC`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := rootOpts.Location()
			if err != nil {
				return err
			}
			d, err := parseDateArg(args[0], loc)
			if err != nil {
				return err
			}
			unit, err := instant.ParseUnit(args[1])
			if err != nil {
				return err
			}
			r := datemath.TruncateIn(d, unit, loc)
			if !r.Valid() {
				return fmt.Errorf("result is not a representable date")
			}
			return writeInstant(cmd, rootOpts.Output, r)
		},
	}
}

// NewBoundsCommand creates the bounds command.
func NewBoundsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the earliest and latest representable dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := struct {
				Min instantResult `json:"min" yaml:"min"`
				Max instantResult `json:"max" yaml:"max"`
			}{
				Min: instantResult{Result: instant.Min.String(), UnixMilli: instant.Min.UnixMilli()},
				Max: instantResult{Result: instant.Max.String(), UnixMilli: instant.Max.UnixMilli()},
			}
			text := fmt.Sprintf("min %s\nmax %s", v.Min.Result, v.Max.Result)
			return writeResult(cmd, rootOpts.Output, v, text)
		},
	}
}
