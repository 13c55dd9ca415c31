// SPDX-License-Identifier: MIT

package simulate

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadsim/bfs"
	"github.com/katalvlaran/roadsim/cost"
	"github.com/katalvlaran/roadsim/heuristic"
	"github.com/katalvlaran/roadsim/idastar"
	"github.com/katalvlaran/roadsim/lrta"
	"github.com/katalvlaran/roadsim/scenario"
	"github.com/katalvlaran/roadsim/search"
	"github.com/katalvlaran/roadsim/traffic"
	"github.com/katalvlaran/roadsim/ucs"
)

// Simulator steps through the days of a scenario.
// It is not safe for concurrent use.
type Simulator struct {
	sc        *scenario.Scenario
	opts      Options
	days      int
	day       int // next day to simulate, 0-based
	h         heuristic.Heuristic
	daily     *cost.Map
	predictor *traffic.Predictor
	log       zerolog.Logger
}

// New prepares a simulation of sc.
//
// Preconditions and validation (in order):
//  1. sc and sc.Graph must be non-nil (search.ErrNilGraph).
//  2. WithDays must not ask for more days than sc predicts (ErrDayRange).
//  3. sc must hold an actual day for every simulated day (scenario.ErrDayMismatch).
//  4. Destination must be reachable from Source (search.ErrNoPath).
func New(sc *scenario.Scenario, opts ...Option) (*Simulator, error) {
	// 1) Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if sc == nil || sc.Graph == nil {
		return nil, fmt.Errorf("%w: no scenario network", search.ErrNilGraph)
	}
	days := sc.Days()
	if o.Days > days {
		return nil, fmt.Errorf("%w: %d requested, scenario has %d", ErrDayRange, o.Days, days)
	}
	if o.Days > 0 {
		days = o.Days
	}
	if len(sc.Actual) < days {
		return nil, fmt.Errorf("%w: %d days to simulate, %d actual", scenario.ErrDayMismatch, days, len(sc.Actual))
	}

	// 2) Pre-flight: the trip must be possible on some day
	tree, err := bfs.Walk(sc.Graph, sc.Source)
	if err != nil {
		return nil, fmt.Errorf("simulate: reachability: %w", err)
	}
	shortest, err := tree.Route(sc.Destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %q unreachable from %q", search.ErrNoPath, sc.Destination, sc.Source)
	}

	// 3) Build the day-independent heuristic once
	optimistic, err := traffic.Optimistic(sc.Graph)
	if err != nil {
		return nil, err
	}
	h, err := heuristic.Build(sc.Graph, optimistic, sc.Destination)
	if err != nil {
		return nil, fmt.Errorf("simulate: heuristic: %w", err)
	}

	s := &Simulator{
		sc:        sc,
		opts:      o,
		days:      days,
		h:         h,
		daily:     optimistic.Clone(),
		predictor: traffic.NewPredictor(o.Seed, o.Probs),
		log:       o.Logger,
	}
	s.log.Debug().
		Str("source", sc.Source).
		Str("destination", sc.Destination).
		Int("nodes", sc.Graph.VertexCount()).
		Int("roads", sc.Graph.RoadCount()).
		Int("hops", len(shortest)-1).
		Int("days", days).
		Msg("simulation ready")

	return s, nil
}

// Heuristic returns the heuristic shared by every day.
func (s *Simulator) Heuristic() heuristic.Heuristic { return s.h }

// Days returns the number of days the simulator will run.
func (s *Simulator) Days() int { return s.days }

// Step simulates the next day. It returns ErrDone after the last day.
func (s *Simulator) Step() (*DayReport, error) {
	if s.day >= s.days {
		return nil, ErrDone
	}
	d := s.day
	s.day++
	log := s.log.With().Int("day", d+1).Logger()

	// 1) Planning snapshot from the perturbed prediction
	predicted := s.predictor.PredictDay(s.sc.Predictions[d])
	if err := traffic.ApplyPredictions(s.daily, s.sc.Graph, predicted); err != nil {
		return nil, fmt.Errorf("simulate: day %d: %w", d+1, err)
	}
	realized := traffic.NewRealized(s.sc.Graph, s.sc.Actual[d])

	// 2) Run every planner
	report := &DayReport{Day: d + 1, Outcomes: make([]Outcome, 0, len(s.opts.Algorithms))}
	for _, alg := range s.opts.Algorithms {
		out, err := s.run(alg, realized)
		if err != nil {
			log.Error().Err(err).Str("algorithm", string(alg)).Msg("planner failed")
			return nil, fmt.Errorf("simulate: day %d: %s: %w", d+1, alg, err)
		}
		log.Info().
			Str("algorithm", string(alg)).
			Float64("cost", out.PredictedCost).
			Float64("real_cost", out.RealCost).
			Int("expanded", out.Expanded).
			Dur("elapsed", out.Elapsed).
			Msg("planned")
		report.Outcomes = append(report.Outcomes, out)
	}

	return report, nil
}

func (s *Simulator) run(alg Algorithm, realized *traffic.Realized) (Outcome, error) {
	var (
		res *search.Result
		err error
	)
	switch alg {
	case UCS:
		res, err = ucs.Search(s.sc.Graph, s.daily, s.sc.Source, s.sc.Destination)
	case IDAStar:
		res, err = idastar.Search(s.sc.Graph, s.daily, s.h, s.sc.Source, s.sc.Destination)
	case LRTA:
		return s.walk(realized)
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	if err != nil {
		return Outcome{}, err
	}

	realCost, err := realized.PathCost(res.Path)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Algorithm:     alg,
		Expanded:      res.Expanded,
		Elapsed:       res.Elapsed,
		PredictedCost: res.Cost,
		RealCost:      realCost,
		Path:          res.Path,
	}, nil
}

func (s *Simulator) walk(realized *traffic.Realized) (Outcome, error) {
	opts := []lrta.Option{lrta.WithSelection(s.opts.Selection)}
	if s.opts.MaxSteps > 0 {
		opts = append(opts, lrta.WithMaxSteps(s.opts.MaxSteps))
	}
	trip, err := lrta.Solve(lrta.View{
		Graph:       s.sc.Graph,
		Heuristic:   s.h,
		Source:      s.sc.Source,
		Destination: s.sc.Destination,
		Observer:    realized,
	}, opts...)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Algorithm: LRTA,
		Online:    true,
		Expanded:  trip.Steps,
		Elapsed:   trip.Elapsed,
		RealCost:  trip.Cost,
		Path:      trip.Path,
	}, nil
}

// Run simulates every selected day of sc and returns the reports in day order.
// A planner failure aborts the run with the wrapped error.
func Run(sc *scenario.Scenario, opts ...Option) ([]DayReport, error) {
	s, err := New(sc, opts...)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	reports := make([]DayReport, 0, s.Days())
	for {
		r, err := s.Step()
		if errors.Is(err, ErrDone) {
			break
		}
		if err != nil {
			return nil, err
		}
		reports = append(reports, *r)
	}
	s.log.Debug().Int("days", len(reports)).Dur("elapsed", time.Since(began)).Msg("simulation finished")

	return reports, nil
}
