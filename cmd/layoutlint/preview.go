package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/markolybrx/layout/internal/preview"
	"github.com/markolybrx/layout/internal/watch"
)

func (a *app) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview FILE",
		Short: "Live-preview a layout file, re-interpreting it on every save",
		Args:  exactFiles(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.preview(cmd, args[0]); err != nil {
				return failed(err)
			}
			return nil
		},
	}
}

func (a *app) preview(cmd *cobra.Command, path string) error {
	w, err := watch.New(path, watch.Options{
		Debounce:  a.cfg.Watch.Debounce,
		Interpret: a.cfg.InterpretOptions(),
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(cmd.Context()); err != nil {
		return err
	}

	model := preview.New(path, w.Results(), a.cfg.RenderOptions(), a.logger)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(a.stdout),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	a.logger.Debug("preview closed", zap.String("path", path))
	return nil
}
