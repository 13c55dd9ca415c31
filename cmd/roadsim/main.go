// SPDX-License-Identifier: MIT

// Command roadsim simulates day-by-day route planning over a road network.
//
// Usage:
//
//	roadsim [run] [flags]     simulate a scenario file
//	roadsim gen [flags]       write a random scenario to stdout
//
// Settings come from the environment (optionally a .env file) and are
// overridden by flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadsim/builder"
	"github.com/katalvlaran/roadsim/config"
	"github.com/katalvlaran/roadsim/lrta"
	"github.com/katalvlaran/roadsim/report"
	"github.com/katalvlaran/roadsim/scenario"
	"github.com/katalvlaran/roadsim/simulate"
	"github.com/katalvlaran/roadsim/traffic"
)

const (
	RUN_SUBCMD = "run"
	GEN_SUBCMD = "gen"

	ERROR_STATUS_CODE = 1
	USAGE_STATUS_CODE = 2
)

const HELP = `roadsim simulates day-by-day route planning over a road network.

Usage:
  roadsim [run] [flags]   simulate a scenario file
  roadsim gen [flags]     write a random scenario to stdout
  roadsim help            show this message

Run "roadsim <command> -h" for the flags of a command.
`

func main() {
	if code := _main(os.Args, os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

func _main(args []string, outW, errW io.Writer) (statusCode int) {
	sub := RUN_SUBCMD
	var subArgs []string
	if len(args) > 1 {
		subArgs = args[1:]
		if !strings.HasPrefix(args[1], "-") {
			sub, subArgs = args[1], args[2:]
		}
	}

	switch sub {
	case "help":
		fmt.Fprint(outW, HELP)
		return 0
	case RUN_SUBCMD:
		return runCmd(subArgs, outW, errW)
	case GEN_SUBCMD:
		return genCmd(subArgs, outW, errW)
	default:
		fmt.Fprintf(errW, "unknown command '%s'\n\n%s", sub, HELP)
		return USAGE_STATUS_CODE
	}
}

func runCmd(args []string, outW, errW io.Writer) int {
	flags := flag.NewFlagSet(RUN_SUBCMD, flag.ContinueOnError)
	flags.SetOutput(errW)

	var (
		envFile    string
		data       string
		days       int
		seed       int64
		format     string
		algorithms string
		selection  string
		maxSteps   int
		logLevel   string
		noTable    bool
	)
	flags.StringVar(&envFile, "env", ".env", "file to read environment defaults from")
	flags.StringVar(&data, "data", "", "scenario file ("+config.KeyData+")")
	flags.IntVar(&days, "days", 0, "number of days to simulate, 0 for all ("+config.KeyDays+")")
	flags.Int64Var(&seed, "seed", 1, "seed of the prediction model ("+config.KeySeed+")")
	flags.StringVar(&format, "format", config.FormatText, "output format: text, yaml or json ("+config.KeyFormat+")")
	flags.StringVar(&algorithms, "algorithms", "ucs,idastar,lrta", "comma-separated planners ("+config.KeyAlgorithms+")")
	flags.StringVar(&selection, "selection", lrta.Estimate.String(), "agent policy: estimate or lookahead ("+config.KeySelection+")")
	flags.IntVar(&maxSteps, "max-steps", 0, "agent step budget, 0 for the default ("+config.KeyMaxSteps+")")
	flags.StringVar(&logLevel, "log-level", "info", "log level ("+config.KeyLogLevel+")")
	flags.BoolVar(&noTable, "no-heuristic", false, "do not print the heuristic table")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return USAGE_STATUS_CODE
	}

	// 1) Environment first, then flags that were explicitly set
	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	var flagErr error
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = data
		case "days":
			cfg.Days = days
		case "seed":
			cfg.Seed = seed
		case "format":
			cfg.Format = strings.ToLower(format)
		case "max-steps":
			cfg.MaxSteps = maxSteps
		case "algorithms":
			if cfg.Algorithms, err = simulate.ParseAlgorithms(algorithms); err != nil {
				flagErr = err
			}
		case "log-level":
			if cfg.LogLevel, err = config.ParseLevel(logLevel); err != nil {
				flagErr = err
			}
		case "selection":
			if cfg.Selection, err = config.ParseSelection(selection); err != nil {
				flagErr = err
			}
		}
	})
	if flagErr == nil {
		flagErr = cfg.Validate()
	}
	if flagErr != nil {
		fmt.Fprintln(errW, flagErr)
		return USAGE_STATUS_CODE
	}
	if cfg.Data == "" {
		fmt.Fprintln(errW, "missing scenario file: set -data or "+config.KeyData)
		return USAGE_STATUS_CODE
	}

	// 2) Logger
	logger := zerolog.New(zerolog.ConsoleWriter{Out: errW, NoColor: true, TimeFormat: time.TimeOnly}).
		Level(cfg.LogLevel).
		With().Timestamp().Str("run_id", uuid.NewString()).
		Logger()

	// 3) Load, simulate, report
	sc, err := scenario.Load(cfg.Data)
	if err != nil {
		logger.Error().Err(err).Msg("cannot load scenario")
		return ERROR_STATUS_CODE
	}
	opts := append(cfg.SimulateOptions(), simulate.WithLogger(logger))
	sim, err := simulate.New(sc, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("cannot start simulation")
		return ERROR_STATUS_CODE
	}

	var reports []simulate.DayReport
	for {
		r, err := sim.Step()
		if errors.Is(err, simulate.ErrDone) {
			break
		}
		if err != nil {
			logger.Error().Err(err).Msg("simulation aborted")
			return ERROR_STATUS_CODE
		}
		reports = append(reports, *r)
	}

	h := sim.Heuristic()
	if noTable {
		h = nil
	}
	switch cfg.Format {
	case config.FormatYAML:
		err = report.WriteYAML(outW, reports, h)
	case config.FormatJSON:
		err = report.WriteJSON(outW, reports, h)
	default:
		err = report.WriteText(outW, reports, h)
	}
	if err != nil {
		logger.Error().Err(err).Msg("cannot write report")
		return ERROR_STATUS_CODE
	}

	return 0
}

func genCmd(args []string, outW, errW io.Writer) int {
	flags := flag.NewFlagSet(GEN_SUBCMD, flag.ContinueOnError)
	flags.SetOutput(errW)

	var (
		nodes    int
		density  float64
		parallel float64
		days     int
		seed     int64
		minCost  float64
		maxCost  float64
	)
	flags.IntVar(&nodes, "nodes", 12, "number of intersections")
	flags.Float64Var(&density, "density", 0.25, "probability of each extra road beyond the spanning tree")
	flags.Float64Var(&parallel, "parallel", 0.3, "probability of a parallel road per connection")
	flags.IntVar(&days, "days", 7, "number of days")
	flags.Int64Var(&seed, "seed", 1, "random seed")
	flags.Float64Var(&minCost, "min-cost", 5, "smallest base cost")
	flags.Float64Var(&maxCost, "max-cost", 60, "largest base cost")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return USAGE_STATUS_CODE
	}
	if nodes < 2 || days < 1 || density < 0 || density > 1 || parallel < 0 || parallel > 1 || minCost < 0 || maxCost < minCost {
		fmt.Fprintln(errW, "invalid generator flags")
		return USAGE_STATUS_CODE
	}

	g, err := builder.BuildNetwork(
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithCostRange(minCost, maxCost),
			builder.WithParallelRoads(parallel),
		},
		builder.RandomConnected(nodes, density),
	)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	sc, err := scenario.Random(g, "N0", fmt.Sprintf("N%d", nodes-1), days, seed, traffic.DefaultProbabilities())
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	if err = scenario.Encode(outW, sc); err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	return 0
}
