package main

import (
	"github.com/spf13/cobra"

	"github.com/markolybrx/layout"
	"github.com/markolybrx/layout/internal/render"
)

func (a *app) renderCommand() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Paint the interpreted layout to the terminal",
		Args:  exactFiles(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := layout.InterpretFileWithOptions(args[0], a.cfg.InterpretOptions())
			if err != nil {
				return failed(err)
			}
			opts := a.cfg.RenderOptions()
			if width > 0 {
				opts.Width = width
			}
			if err := writeln(a.stdout, render.Render(node, opts)); err != nil {
				return failed(err)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "terminal cells available to the root (default from config)")
	return cmd
}
