// SPDX-License-Identifier: MIT

// Package roadsim simulates day-by-day route planning over a road network
// whose costs fluctuate with traffic.
//
// Every day a driver travels from a fixed source to a fixed destination. The
// morning traffic report is only a prediction: the simulator perturbs it with
// a seeded probability model, plans with that snapshot and then scores the
// chosen route against the traffic that actually happened.
//
// Packages:
//
//	core/        thread-safe multigraph of named roads between string nodes
//	cost/        symmetric per-pair cost snapshot with tagged Unset/Known values
//	traffic/     traffic levels, optimistic and predicted costs, realized observer, predictor
//	search/      shared errors, result record, FIFO-stable priority frontier
//	heuristic/   reverse Dijkstra over optimistic costs (admissible cost-to-go)
//	ucs/         Uniform-Cost Search
//	idastar/     Iterative-Deepening A*
//	lrta/        online Learning-Real-Time-A* agent
//	bfs/         fewest-roads walks and reachability
//	builder/     deterministic network generators for tests and the gen command
//	scenario/    text format reader and writer
//	simulate/    the day loop
//	report/      text, YAML and JSON output
//	config/      environment and .env settings
//
// Quick start:
//
//	sc, _ := scenario.Load("city.txt")
//	reports, _ := simulate.Run(sc, simulate.WithSeed(7))
//	_ = report.WriteText(os.Stdout, reports, nil)
//
// The roadsim command wraps the same flow: "roadsim -data city.txt".
package roadsim
