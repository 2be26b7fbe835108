package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/markolybrx/layout/internal/config"
	"github.com/markolybrx/layout/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// runError marks a failure of the command itself, as opposed to a usage error.
type runError struct {
	err error
}

func (e runError) Error() string { return e.err.Error() }

func (e runError) Unwrap() error { return e.err }

func failed(err error) error {
	return runError{err: err}
}

// errReported signals a failure whose details were already written.
var errReported = errors.New("failures reported")

type app struct {
	stdout, stderr io.Writer
	configPath     string
	verbose        bool
	cfg            config.Config
	logger         *zap.Logger
	closeLog       func() error
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	defer a.close()

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	var re runError
	if errors.As(err, &re) {
		if !errors.Is(err, errReported) {
			_ = writef(stderr, "error: %v\n", err)
		}
		return 1
	}
	if cmd == nil {
		cmd = root
	}
	_ = writef(stderr, "error: %v\n", err)
	_ = writeln(stderr, cmd.UsageString())
	return 2
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "layoutlint",
		Short: "Interpret, inspect and preview Android layout XML",
		Long: `layoutlint interprets Android-flavored layout XML into a tree of visual
nodes (containers, buttons, text, images and inputs) and reports, prints,
paints or live-previews the result.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.checkCommand(),
		a.dumpCommand(),
		a.renderCommand(),
		a.previewCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return failed(err)
	}
	a.cfg = cfg

	opts := logging.Options{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		Verbose:     a.verbose,
		File:        cfg.Log.File,
		Output:      a.stderr,
	}
	// The preview owns the terminal; without a log file its logs are dropped.
	if cmd.Name() == "preview" && cfg.Log.File == "" {
		return nil
	}
	logger, closeLog, err := logging.New(opts)
	if err != nil {
		return failed(err)
	}
	a.logger = logger
	a.closeLog = closeLog
	return nil
}

func (a *app) close() {
	_ = a.logger.Sync()
	if a.closeLog != nil {
		_ = a.closeLog()
		a.closeLog = nil
	}
}

// exactFiles validates positional file arguments.
func exactFiles(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%s requires exactly %d layout file argument(s), got %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
