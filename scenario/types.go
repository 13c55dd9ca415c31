// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/traffic"
)

var (
	// ErrSyntax indicates a malformed line or misplaced section tag.
	ErrSyntax = errors.New("scenario: syntax error")

	// ErrUnknownRoad indicates a day record naming a road not declared in <Roads>.
	ErrUnknownRoad = errors.New("scenario: unknown road")

	// ErrUnknownNode indicates a source or destination that no road touches.
	ErrUnknownNode = errors.New("scenario: unknown node")

	// ErrDayMismatch indicates differing numbers of predicted and actual days.
	ErrDayMismatch = errors.New("scenario: predicted and actual day counts differ")
)

// Scenario is a parsed simulation input.
type Scenario struct {
	Source      string
	Destination string
	Graph       *core.Graph   // multigraph of named roads
	Predictions []traffic.Day // reported predictions, one per day
	Actual      []traffic.Day // realized traffic, one per day
}

// Days returns the number of simulated days.
func (s *Scenario) Days() int { return len(s.Predictions) }

// Section tags.
const (
	tagSource      = "Source"
	tagDestination = "Destination"
	tagRoads       = "Roads"
	tagPredictions = "Predictions"
	tagActual      = "ActualTrafficPerDay"
	tagDay         = "Day"
)

func openTag(tag string) string { return "<" + tag + ">" }
func closeTag(tag string) string { return "</" + tag + ">" }
