package main

import (
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/markolybrx/layout"
	layouterrors "github.com/markolybrx/layout/errors"
)

type checkResult struct {
	nodes int
	err   error
}

func (a *app) checkCommand() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Interpret layout files and report any that fail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd, args, jobs)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "files interpreted in parallel")
	return cmd
}

func (a *app) check(cmd *cobra.Command, paths []string, jobs int) error {
	start := time.Now()
	opts := a.cfg.InterpretOptions()
	results := make([]checkResult, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			node, err := layout.InterpretFileWithOptions(path, opts)
			if err != nil {
				results[i] = checkResult{err: err}
				return nil
			}
			results[i] = checkResult{nodes: node.Count()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return failed(err)
	}

	failures := 0
	for i, path := range paths {
		r := results[i]
		if r.err == nil {
			if err := writef(a.stdout, "%s interprets (%d nodes)\n", path, r.nodes); err != nil {
				return failed(err)
			}
			continue
		}
		failures++
		if pe, ok := layouterrors.AsParseError(r.err); ok {
			if err := writef(a.stderr, "%s: %s\n%s fails to interpret\n", path, pe.Error(), path); err != nil {
				return failed(err)
			}
			continue
		}
		if err := writef(a.stderr, "error interpreting: %v\n", r.err); err != nil {
			return failed(err)
		}
	}

	a.logger.Debug("check finished",
		zap.Int("files", len(paths)),
		zap.Int("failures", failures),
		zap.Duration("elapsed", time.Since(start)),
	)
	if failures > 0 {
		return failed(errReported)
	}
	return nil
}
