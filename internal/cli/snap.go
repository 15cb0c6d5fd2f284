package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsnap/pkg/errors"
	"github.com/matzehuels/gridsnap/pkg/grid"
	"github.com/matzehuels/gridsnap/pkg/layout"
)

// snapCommand creates the snap command that aligns a point to the grid.
func (c *CLI) snapCommand() *cobra.Command {
	var (
		interval float64
		up       bool
	)

	cmd := &cobra.Command{
		Use:   "snap <x> <y>",
		Short: "Snap a point to the grid",
		Long: `Snap a point to the grid. Coordinates are rounded down to the previous grid
line, or with --up to the next one; an aligned coordinate rounded up moves a
full interval.`,
		Example: `  gridsnap snap 135 97
  gridsnap snap 135 97 --up --interval 25`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			if interval <= 0 {
				return errors.New(errors.ErrCodeInvalidArgument, "interval must be positive (got %g)", interval)
			}
			fmt.Fprintln(cmd.OutOrStdout(), grid.Snap(p, interval, up))
			return nil
		},
	}

	cmd.Flags().Float64Var(&interval, "interval", layout.DefaultSnap, "grid interval in pixels")
	cmd.Flags().BoolVar(&up, "up", false, "round up instead of down")
	return cmd
}

func parsePoint(xs, ys string) (grid.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return grid.Point{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "invalid x coordinate %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return grid.Point{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "invalid y coordinate %q", ys)
	}
	return grid.Point{X: x, Y: y}, nil
}
