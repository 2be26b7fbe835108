package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/markolybrx/layout"
	"github.com/markolybrx/layout/internal/render"
)

func (a *app) dumpCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the interpreted visual tree",
		Args:  exactFiles(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "tree", "json", "yaml":
			default:
				return fmt.Errorf("unknown format %q (want tree, json or yaml)", format)
			}
			node, err := layout.InterpretFileWithOptions(args[0], a.cfg.InterpretOptions())
			if err != nil {
				return failed(err)
			}
			if err := a.dump(node, format); err != nil {
				return failed(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "tree", "output format: tree, json or yaml")
	return cmd
}

func (a *app) dump(node *layout.VisualNode, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return writeln(a.stdout, string(data))
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return writef(a.stdout, "%s", render.Outline(node))
	}
}
