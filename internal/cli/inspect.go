package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/gridsnap/pkg/io"
	"github.com/matzehuels/gridsnap/pkg/layout"
)

// inspectCommand creates the inspect command that prints a layout file.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <layout.json>",
		Short: "Print a layout file as a table",
		Long: `Load a layout file into a layout manager and print its units with their
coordinates, whether they sit on the grid and whether their size is within
the configured limits.`,
		Example: `  gridsnap inspect dashboard.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			snap, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			mgr, err := layout.NewManager(nil, nil, cfg.LayoutOptions())
			if err != nil {
				return err
			}
			if err := mgr.LoadLayout(snap); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Loaded %d units", mgr.Len()))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, unitTable(mgr.Units()))
			reportOffGrid(out, mgr.Units())
			return nil
		},
	}
	return cmd
}

// reportOffGrid summarizes units whose geometry no session has written yet.
func reportOffGrid(w io.Writer, units []*layout.Unit) {
	misaligned, outOfBounds := 0, 0
	for _, u := range units {
		if !u.Rect().Aligned(u.Options().Snap) {
			misaligned++
		}
		if sizeStatus(u) != "ok" {
			outOfBounds++
		}
	}
	if misaligned == 0 && outOfBounds == 0 {
		printInfo(w, "All %d units are on the grid", len(units))
		return
	}
	if misaligned > 0 {
		printWarning(w, "%d units are off the grid", misaligned)
	}
	if outOfBounds > 0 {
		printWarning(w, "%d units are outside the size limits", outOfBounds)
	}
	printDetail(w, "geometry is snapped and clamped the next time a unit is moved or resized")
}

// sizeStatus describes how a unit's size relates to its limits.
func sizeStatus(u *layout.Unit) string {
	r, o := u.Rect(), u.Options()
	switch {
	case r.Width < o.MinSize || r.Height < o.MinSize:
		return "below min"
	case r.Width > o.MaxSize || r.Height > o.MaxSize:
		return "above max"
	default:
		return "ok"
	}
}

// unitTable renders units as a bordered table.
func unitTable(units []*layout.Unit) string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	rows := make([][]string, len(units))
	for i, u := range units {
		r := u.Rect()
		aligned := iconSuccess
		if !r.Aligned(u.Options().Snap) {
			aligned = iconError
		}
		rows[i] = []string{
			strconv.Itoa(i + 1), u.ID(),
			num(r.Left), num(r.Top), num(r.Width), num(r.Height),
			aligned, sizeStatus(u),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "ID", "Left", "Top", "Width", "Height", "Grid", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			switch col {
			case 0:
				return cellStyle.Foreground(colorDim)
			case 6:
				if rows[row][col] == iconSuccess {
					return cellStyle.Foreground(colorGreen)
				}
				return cellStyle.Foreground(colorRed)
			case 7:
				if rows[row][col] != "ok" {
					return cellStyle.Foreground(colorYellow)
				}
			}
			return cellStyle
		})
	return t.Render()
}
