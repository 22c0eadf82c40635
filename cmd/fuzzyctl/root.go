package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/fuzzycalc/config"
	"github.com/katalvlaran/fuzzycalc/control"
	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands.
type app struct {
	stdout, stderr io.Writer
	cfgPath        string
	logLevel       string
	logFormat      string
	log            *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "fuzzyctl",
		Short:         "Evaluate fuzzy controllers defined in YAML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(a.stderr, a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "controller definition (YAML)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "auto", "auto, text or json")

	root.AddCommand(a.validateCmd(), a.evalCmd(), a.classifyCmd())

	return root
}

// load reads and builds the controller named by --config.
func (a *app) load() (*config.Config, *control.Controller, error) {
	if a.cfgPath == "" {
		return nil, nil, fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		a.log.Error("load failed", "path", a.cfgPath, "err", err)
		return nil, nil, err
	}
	ctl, err := config.Build(cfg)
	if err != nil {
		a.log.Error("build failed", "path", a.cfgPath, "err", err)
		return nil, nil, err
	}
	a.log.Debug("controller ready",
		"path", a.cfgPath,
		"method", ctl.Method(),
		"inputs", ctl.Inputs(),
		"outputs", ctl.Outputs(),
		"rules", len(cfg.Rules),
	)

	return cfg, ctl, nil
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a controller definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, ctl, err := a.load()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "ok: %s, %d inputs, %d outputs, %d rules\n",
				ctl.Method(), len(cfg.Inputs), len(cfg.Outputs), len(cfg.Rules))
			return err
		},
	}
}

func (a *app) evalCmd() *cobra.Command {
	var (
		sets    []string
		explain bool
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Set inputs and print every output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			_, ctl, err := a.load()
			if err != nil {
				return err
			}
			if err = ctl.Set(values); err != nil {
				return err
			}
			a.log.Info("inputs set", "values", values)

			for _, name := range ctl.Outputs() {
				v, ok, _ := ctl.Estim(name)
				if !ok {
					a.log.Warn("output is indeterminate", "output", name)
					fmt.Fprintf(a.stdout, "%s=unknown\n", name)
					continue
				}
				label, _, _ := ctl.Label(name)
				fmt.Fprintf(a.stdout, "%s=%s %s\n", name, strconv.FormatFloat(v, 'g', 6, 64), label)
			}
			if explain {
				return ctl.Explain(a.stdout)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "input assignment name=value (repeatable)")
	cmd.Flags().BoolVar(&explain, "explain", false, "dump the trees and rule strengths")

	return cmd
}

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <variable> <value>",
		Short: "Print the memberships of a crisp value in a variable's scale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[1], err)
			}
			_, ctl, err := a.load()
			if err != nil {
				return err
			}
			n, ok := ctl.Input(args[0])
			if !ok {
				if n, ok = ctl.Output(args[0]); !ok {
					return fmt.Errorf("variable %q: %w", args[0], control.ErrUnknownVariable)
				}
			}
			fs := n.Classifier()
			parts := make([]string, 0, fs.Len())
			for _, m := range fs.Memberships(x) {
				parts = append(parts, fmt.Sprintf("%s=%.4g", m.Term, m.Degree))
			}
			best, ok := fs.Classify(x)
			if !ok {
				best = "none"
			}
			_, err = fmt.Fprintf(a.stdout, "%s -> %s\n", strings.Join(parts, " "), best)
			return err
		},
	}
}

// parseAssignments turns name=value pairs into a map; a repeated name keeps
// the last value.
func parseAssignments(sets []string) (map[string]float64, error) {
	values := make(map[string]float64, len(sets))
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("--set %q: want name=value", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("--set %q: %w", s, err)
		}
		values[name] = v
	}

	return values, nil
}
