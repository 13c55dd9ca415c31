// SPDX-License-Identifier: MIT

package scenario

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/traffic"
)

// Encode writes sc to w in the text format accepted by Parse.
// Roads are written in name order and day records list every road.
func Encode(w io.Writer, sc *Scenario) error {
	bw := bufio.NewWriter(w)
	roads := sc.Graph.Roads()

	fmt.Fprintf(bw, "%s%s%s\n", openTag(tagSource), sc.Source, closeTag(tagSource))
	fmt.Fprintf(bw, "%s%s%s\n", openTag(tagDestination), sc.Destination, closeTag(tagDestination))
	fmt.Fprintln(bw, openTag(tagRoads))
	for _, r := range roads {
		fmt.Fprintf(bw, "%s; %s; %s; %s\n", r.Name, r.From, r.To, strconv.FormatFloat(r.Cost, 'f', -1, 64))
	}
	fmt.Fprintln(bw, closeTag(tagRoads))

	writeDays(bw, tagPredictions, sc.Predictions, roads)
	writeDays(bw, tagActual, sc.Actual, roads)

	return bw.Flush()
}

func writeDays(bw *bufio.Writer, section string, days []traffic.Day, roads []core.Road) {
	fmt.Fprintln(bw, openTag(section))
	for _, day := range days {
		fmt.Fprintln(bw, openTag(tagDay))
		for _, r := range roads {
			fmt.Fprintf(bw, "%s; %s\n", r.Name, day.Level(r.Name))
		}
		fmt.Fprintln(bw, closeTag(tagDay))
	}
	fmt.Fprintln(bw, closeTag(section))
}

// Random draws days of reported and realized traffic for every road of g.
// Realized traffic matches the report with probability probs.Correct and is
// otherwise one level lighter or heavier, mirroring what the simulator's
// predictor assumes. The same seed yields the same scenario.
func Random(g *core.Graph, source, destination string, days int, seed int64, probs traffic.Probabilities) (*Scenario, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, source)
	}
	if !g.HasVertex(destination) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, destination)
	}
	if err := probs.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	realize := traffic.NewPredictor(seed+1, probs)
	names := make([]string, 0, g.RoadCount())
	for _, r := range g.Roads() {
		names = append(names, r.Name)
	}
	sort.Strings(names)

	sc := &Scenario{Source: source, Destination: destination, Graph: g}
	for d := 0; d < days; d++ {
		reported := make(traffic.Day, len(names))
		for _, name := range names {
			reported[name] = traffic.Level(rng.Intn(3))
		}
		sc.Predictions = append(sc.Predictions, reported)
		sc.Actual = append(sc.Actual, realize.PredictDay(reported))
	}

	return sc, nil
}
