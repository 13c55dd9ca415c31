// SPDX-License-Identifier: MIT

// Package report renders simulation results as plain text or YAML.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/roadsim/heuristic"
	"github.com/katalvlaran/roadsim/simulate"
)

// PathSeparator joins nodes when a path is printed.
const PathSeparator = " -> "

// FormatPath joins path with PathSeparator.
func FormatPath(path []string) string { return strings.Join(path, PathSeparator) }

// WriteHeuristic prints one "node: estimate" line per node in name order.
// Unreachable nodes print "inf".
func WriteHeuristic(w io.Writer, h heuristic.Heuristic) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Heuristic:")
	for _, id := range h.Nodes() {
		v := h.Of(id)
		if math.IsInf(v, 1) {
			fmt.Fprintf(bw, "  %s: inf\n", id)
			continue
		}
		fmt.Fprintf(bw, "  %s: %.2f\n", id, v)
	}

	return bw.Flush()
}

// WriteText prints the heuristic table, one block per planner per day and a
// closing summary. h may be nil to skip the table.
func WriteText(w io.Writer, reports []simulate.DayReport, h heuristic.Heuristic) error {
	if h != nil {
		if err := WriteHeuristic(w, h); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	for _, r := range reports {
		for _, o := range r.Outcomes {
			fmt.Fprintf(bw, "Day %d [%s]\n", r.Day, o.Algorithm)
			if o.Online {
				fmt.Fprintf(bw, "Moves:  %d\n", o.Expanded)
			} else {
				fmt.Fprintf(bw, "Visited Nodes Number:  %d\n", o.Expanded)
			}
			fmt.Fprintf(bw, "Execution time:  %f\n", o.Elapsed.Seconds())
			fmt.Fprintf(bw, "Path: %s\n", FormatPath(o.Path))
			if !o.Online {
				fmt.Fprintf(bw, "Predicted Cost: %.2f\n", o.PredictedCost)
			}
			fmt.Fprintf(bw, "Real Cost:  %.2f\n\n", o.RealCost)
		}
	}

	sums := simulate.Summarize(reports)
	if len(sums) > 0 {
		fmt.Fprintln(bw, "Summary:")
	}
	for _, s := range sums {
		fmt.Fprintf(bw, "  %-8s days=%d", s.Algorithm, s.Days)
		if s.Planned > 0 {
			fmt.Fprintf(bw, " mean_predicted=%.2f", s.MeanPredicted)
		}
		fmt.Fprintf(bw, " mean_real=%.2f total_real=%.2f mean_expanded=%.1f\n", s.MeanReal, s.TotalReal, s.MeanExpanded)
	}

	return bw.Flush()
}

// Document is the serialized shape of a simulation.
type Document struct {
	Heuristic []Estimate `json:"heuristic,omitempty" yaml:"heuristic,omitempty"`
	Days      []Day      `json:"days" yaml:"days"`
	Summary   []Total    `json:"summary" yaml:"summary"`
}

// Estimate is one heuristic entry; Value is nil for unreachable nodes.
type Estimate struct {
	Node  string   `json:"node" yaml:"node"`
	Value *float64 `json:"value" yaml:"value"`
}

// Day lists the planners' outcomes for one day.
type Day struct {
	Day      int       `json:"day" yaml:"day"`
	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
}

// Outcome is the serialized shape of simulate.Outcome.
type Outcome struct {
	Algorithm     string   `json:"algorithm" yaml:"algorithm"`
	Online        bool     `json:"online,omitempty" yaml:"online,omitempty"`
	Expanded      int      `json:"expanded" yaml:"expanded"`
	Elapsed       string   `json:"elapsed" yaml:"elapsed"`
	PredictedCost *float64 `json:"predicted_cost,omitempty" yaml:"predicted_cost,omitempty"`
	RealCost      float64  `json:"real_cost" yaml:"real_cost"`
	Path          []string `json:"path" yaml:"path,flow"`
}

// Total is the serialized shape of simulate.Summary.
type Total struct {
	Algorithm     string   `json:"algorithm" yaml:"algorithm"`
	Days          int      `json:"days" yaml:"days"`
	MeanPredicted *float64 `json:"mean_predicted_cost,omitempty" yaml:"mean_predicted_cost,omitempty"`
	MeanReal      float64  `json:"mean_real_cost" yaml:"mean_real_cost"`
	TotalReal     float64  `json:"total_real_cost" yaml:"total_real_cost"`
	MeanExpanded  float64  `json:"mean_expanded" yaml:"mean_expanded"`
	TotalElapsed  string   `json:"total_elapsed" yaml:"total_elapsed"`
}

// Build converts reports and h into a Document.
func Build(reports []simulate.DayReport, h heuristic.Heuristic) Document {
	var doc Document
	for _, id := range h.Nodes() {
		e := Estimate{Node: id}
		if v := h.Of(id); !math.IsInf(v, 1) {
			e.Value = &v
		}
		doc.Heuristic = append(doc.Heuristic, e)
	}

	doc.Days = make([]Day, 0, len(reports))
	for _, r := range reports {
		day := Day{Day: r.Day, Outcomes: make([]Outcome, 0, len(r.Outcomes))}
		for _, o := range r.Outcomes {
			out := Outcome{
				Algorithm: string(o.Algorithm),
				Online:    o.Online,
				Expanded:  o.Expanded,
				Elapsed:   o.Elapsed.Round(time.Microsecond).String(),
				RealCost:  o.RealCost,
				Path:      o.Path,
			}
			if !o.Online {
				pc := o.PredictedCost
				out.PredictedCost = &pc
			}
			day.Outcomes = append(day.Outcomes, out)
		}
		doc.Days = append(doc.Days, day)
	}

	for _, s := range simulate.Summarize(reports) {
		t := Total{
			Algorithm:    string(s.Algorithm),
			Days:         s.Days,
			MeanReal:     s.MeanReal,
			TotalReal:    s.TotalReal,
			MeanExpanded: s.MeanExpanded,
			TotalElapsed: s.TotalElapsed.Round(time.Microsecond).String(),
		}
		if s.Planned > 0 {
			mp := s.MeanPredicted
			t.MeanPredicted = &mp
		}
		doc.Summary = append(doc.Summary, t)
	}

	return doc
}

// WriteYAML encodes the Document built from reports and h.
func WriteYAML(w io.Writer, reports []simulate.DayReport, h heuristic.Heuristic) error {
	out, err := yaml.Marshal(Build(reports, h))
	if err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}
	_, err = w.Write(out)

	return err
}

// WriteJSON encodes the Document built from reports and h as indented JSON.
func WriteJSON(w io.Writer, reports []simulate.DayReport, h heuristic.Heuristic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Build(reports, h)); err != nil {
		return fmt.Errorf("report: json: %w", err)
	}

	return nil
}
