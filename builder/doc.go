// SPDX-License-Identifier: MIT

// Package builder generates deterministic road networks for tests,
// benchmarks and examples.
//
// One orchestrator, BuildNetwork(bopts, cons...), creates a multigraph,
// resolves the configuration and runs constructors in order. Constructors
// (Path, Cycle, Grid, RandomConnected) only add topology; road costs come from
// the shared cost generator, so the same seed and constructor order always
// yield the same network.
//
// Road names are "R1", "R2", ... in emission order; vertex IDs are
// cfg.prefix followed by the index ("N0", "N1", ...), except Grid which uses
// "r,c" coordinates.
package builder
