package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/internal/config"
	"github.com/katalvlaran/lvmat/internal/logging"
	"github.com/katalvlaran/lvmat/internal/scenario"
)

// app carries state shared by the subcommands once the root has loaded config.
type app struct {
	cfg    config.Config
	log    hclog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	var logLevel string

	root := &cobra.Command{
		Use:   "matbench",
		Short: "Run lvmat matrix scenarios on the lazy and eager engines",
		Long: `matbench evaluates a fixed set of matrix workloads with the lazy
expression-graph engine and the eager engine, checks that both agree and
reports timings.

Settings come from LVMAT_ENGINE, LVMAT_LOG_LEVEL, LVMAT_LOG_JSON and
LVMAT_REPEAT; flags take precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.log = logging.New("matbench", cfg.LogLevel, cfg.LogJSON, a.stderr)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	root.AddCommand(newListCmd(a), newRunCmd(a), newPrintCmd(a))
	return root
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenario names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenario.Names() {
				s, err := scenario.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%-14s %s\n", s.Name, s.Description)
			}
			return nil
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	var (
		engine string
		repeat int
		dump   bool
	)
	cmd := &cobra.Command{
		Use:   "run [names...]",
		Short: "Run scenarios (all by default) and print a timing table",
		Example: `  matbench run
  matbench run sum3 complex --engine lazy --print`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("engine") {
				engine = a.cfg.Engine
			}
			if !cmd.Flags().Changed("repeat") {
				repeat = a.cfg.Repeat
			}
			engines, err := scenario.ParseEngines(engine)
			if err != nil {
				return err
			}
			a.log.Debug("starting run", "engine", engine, "repeat", repeat, "scenarios", args)

			results, runErr := scenario.NewRunner(a.log,
				scenario.WithEngines(engines...),
				scenario.WithRepeat(repeat),
			).Run(args...)

			if err := scenario.WriteReport(a.stdout, results); err != nil {
				return errors.Join(runErr, err)
			}
			if dump {
				for _, res := range results {
					if res.Outcome.Rendered == "" {
						continue
					}
					fmt.Fprintf(a.stdout, "\n%s (%s):\n%s", res.Scenario, res.Engine, res.Outcome.Rendered)
				}
			}
			return runErr
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "both", "engine to run: lazy, eager or both")
	cmd.Flags().IntVar(&repeat, "repeat", 1, "runs per scenario; the fastest is reported")
	cmd.Flags().BoolVar(&dump, "print", false, "also print result matrices small enough to render")
	return cmd
}

func newPrintCmd(a *app) *cobra.Command {
	var engine string
	cmd := &cobra.Command{
		Use:   "print <name>",
		Short: "Print a scenario's result matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Lookup(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("engine") {
				engine = a.cfg.Engine
			}
			engines, err := scenario.ParseEngines(engine)
			if err != nil {
				return fmt.Errorf("print: %w", err)
			}
			// "both" prints with the first engine; the outputs are identical.
			eng := engines[0]
			out, err := s.Run(eng)
			if err != nil {
				return err
			}
			a.log.Debug("printed scenario", "scenario", s.Name, "engine", eng.String(), "shape", out.Shape.String())
			if out.Rendered == "" {
				fmt.Fprintf(a.stdout, "%s: %s result, probe %s\n", s.Name, out.Shape, out.Probe)
				return nil
			}
			_, err = io.WriteString(a.stdout, out.Rendered)
			return err
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "", "engine to print with: lazy or eager (default from LVMAT_ENGINE, lazy for both)")
	return cmd
}
