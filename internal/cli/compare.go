package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-datemath/datecmp"
	"github.com/ngrash/go-datemath/instant"
)

type compareResult struct {
	Result int `json:"result" yaml:"result"`
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Order two dates: -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := rootOpts.Location()
			if err != nil {
				return err
			}
			a, err := parseDateArg(args[0], loc)
			if err != nil {
				return err
			}
			b, err := parseDateArg(args[1], loc)
			if err != nil {
				return err
			}
			r, err := datecmp.Compare(a, b, datecmp.SortOrder(order))
			if err != nil {
				return err
			}
			return writeResult(cmd, rootOpts.Output, compareResult{Result: r}, strconv.Itoa(r))
		},
	}

	cmd.Flags().StringVar(&order, "order", string(datecmp.Ascending), "sort order: asc or desc")

	return cmd
}

type boolResult struct {
	Result bool `json:"result" yaml:"result"`
}

// NewBetweenCommand creates the between command.
func NewBetweenCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		unitName     string
		excludeStart bool
		excludeEnd   bool
	)

	cmd := &cobra.Command{
		Use:   "between <target> <start> <end>",
		Short: "Report whether a date lies within a range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := rootOpts.Location()
			if err != nil {
				return err
			}
			target, err := parseDateArg(args[0], loc)
			if err != nil {
				return err
			}
			start, err := parseDateArg(args[1], loc)
			if err != nil {
				return err
			}
			end, err := parseDateArg(args[2], loc)
			if err != nil {
				return err
			}
			unit, err := instant.ParseUnit(unitName)
			if err != nil {
				return err
			}
			r := datecmp.IsBetween(target, start, end, &datecmp.BetweenOptions{
				Unit:         unit,
				ExcludeStart: excludeStart,
				ExcludeEnd:   excludeEnd,
			})
			return writeResult(cmd, rootOpts.Output, boolResult{Result: r}, strconv.FormatBool(r))
		},
	}

	cmd.Flags().StringVar(&unitName, "unit", "millisecond", "granularity for the comparison")
	cmd.Flags().BoolVar(&excludeStart, "exclude-start", false, "treat the start bound as exclusive")
	cmd.Flags().BoolVar(&excludeEnd, "exclude-end", false, "treat the end bound as exclusive")

	return cmd
}
