package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsnap/pkg/io"
	"github.com/matzehuels/gridsnap/pkg/layout"
)

// editCommand creates the edit command for interactive layout editing.
func (c *CLI) editCommand() *cobra.Command {
	var (
		output string
		static bool
	)

	cmd := &cobra.Command{
		Use:   "edit [layout.json]",
		Short: "Edit a layout interactively in the terminal",
		Long: `Edit a layout interactively in the terminal.

Double-click the background to add a unit, drag a unit to move it, drag its
bottom-right corner to resize it and click its top-right corner to remove it.
When the editor exits the layout is written to --output, or to stdout as JSON.`,
		Example: `  gridsnap edit
  gridsnap edit dashboard.json -o dashboard.json
  gridsnap edit dashboard.json --static`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			cv := newCanvas(cfg.Editor.CellWidth, cfg.Editor.CellHeight, editorHeaderRows)
			mgr, err := layout.NewManager(cv, cv, cfg.LayoutOptions())
			if err != nil {
				return err
			}
			cv.prefix = mgr.Options().IDPrefix
			cv.snap = mgr.Options().Snap

			if len(args) == 1 {
				snap, err := io.ImportJSON(args[0])
				if err != nil {
					return err
				}
				if err := mgr.LoadLayout(snap); err != nil {
					return err
				}
			}
			mgr.SetEditable(!static)

			model := newEditorModel(mgr, cv, cfg.Editor.DoubleClick())
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("editor: %w", err)
			}

			snap := mgr.GetLayout()
			if output == "" {
				return io.WriteJSON(snap, cmd.OutOrStdout())
			}
			if err := io.ExportJSON(snap, output); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Saved %d units", len(snap))
			printFile(out, output)
			printNextStep(out, "Inspect it", "gridsnap inspect "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the layout to this file instead of stdout")
	cmd.Flags().BoolVar(&static, "static", false, "start with editing disabled")
	return cmd
}
