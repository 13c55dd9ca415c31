// SPDX-License-Identifier: MIT

package scenario

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/traffic"
)

// Load parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse reads a scenario from r.
func Parse(r io.Reader) (*Scenario, error) {
	p := &parser{
		sc:  &Scenario{Graph: core.NewGraph(core.WithMultiEdges())},
		scn: bufio.NewScanner(r),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	return p.sc, nil
}

// parser state for a single Parse call.
type parser struct {
	sc   *Scenario
	scn  *bufio.Scanner
	line int
}

// next returns the next non-blank trimmed line; ok is false at EOF.
func (p *parser) next() (string, bool) {
	for p.scn.Scan() {
		p.line++
		if s := strings.TrimSpace(p.scn.Text()); s != "" {
			return s, true
		}
	}

	return "", false
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, p.line, fmt.Sprintf(format, args...))
}

func (p *parser) run() error {
	for {
		s, ok := p.next()
		if !ok {
			return p.scn.Err()
		}

		var err error
		switch {
		case strings.HasPrefix(s, openTag(tagSource)):
			p.sc.Source, err = p.inline(s, tagSource)
		case strings.HasPrefix(s, openTag(tagDestination)):
			p.sc.Destination, err = p.inline(s, tagDestination)
		case s == openTag(tagRoads):
			err = p.roads()
		case s == openTag(tagPredictions):
			p.sc.Predictions, err = p.days(tagPredictions)
		case s == openTag(tagActual):
			p.sc.Actual, err = p.days(tagActual)
		default:
			err = p.errorf("unexpected %q", s)
		}
		if err != nil {
			return err
		}
	}
}

// inline extracts the value of a one-line <Tag>value</Tag> element.
func (p *parser) inline(s, tag string) (string, error) {
	if !strings.HasSuffix(s, closeTag(tag)) {
		return "", p.errorf("missing %s", closeTag(tag))
	}
	v := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, openTag(tag)), closeTag(tag)))
	if v == "" {
		return "", p.errorf("empty %s", tag)
	}

	return v, nil
}

// fields splits a record line on ';' and trims every field.
func fields(s string) []string {
	parts := strings.Split(s, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

func (p *parser) roads() error {
	for {
		s, ok := p.next()
		if !ok {
			return p.errorf("unterminated %s", openTag(tagRoads))
		}
		if s == closeTag(tagRoads) {
			return nil
		}

		f := fields(s)
		if len(f) != 4 {
			return p.errorf("road %q: want 4 fields, got %d", s, len(f))
		}
		w, err := strconv.ParseFloat(f[3], 64)
		if err != nil {
			return p.errorf("road %s: bad cost %q", f[0], f[3])
		}
		if err = p.sc.Graph.AddRoad(f[0], f[1], f[2], w); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrSyntax, p.line, err)
		}
	}
}

func (p *parser) days(section string) ([]traffic.Day, error) {
	var out []traffic.Day
	for {
		s, ok := p.next()
		if !ok {
			return nil, p.errorf("unterminated %s", openTag(section))
		}
		switch s {
		case closeTag(section):
			return out, nil
		case openTag(tagDay):
			day, err := p.day()
			if err != nil {
				return nil, err
			}
			out = append(out, day)
		default:
			return nil, p.errorf("expected %s in %s, got %q", openTag(tagDay), section, s)
		}
	}
}

func (p *parser) day() (traffic.Day, error) {
	day := make(traffic.Day)
	for {
		s, ok := p.next()
		if !ok {
			return nil, p.errorf("unterminated %s", openTag(tagDay))
		}
		if s == closeTag(tagDay) {
			return day, nil
		}

		f := fields(s)
		if len(f) != 2 {
			return nil, p.errorf("traffic %q: want 2 fields, got %d", s, len(f))
		}
		if _, err := p.sc.Graph.Road(f[0]); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrUnknownRoad, p.line, f[0])
		}
		level, err := traffic.ParseLevel(f[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, p.line, err)
		}
		day[f[0]] = level
	}
}

func (p *parser) validate() error {
	if p.sc.Source == "" || p.sc.Destination == "" {
		return fmt.Errorf("%w: missing %s or %s", ErrSyntax, openTag(tagSource), openTag(tagDestination))
	}
	for _, id := range []string{p.sc.Source, p.sc.Destination} {
		if !p.sc.Graph.HasVertex(id) {
			return fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}
	if len(p.sc.Predictions) != len(p.sc.Actual) {
		return fmt.Errorf("%w: %d predicted, %d actual", ErrDayMismatch, len(p.sc.Predictions), len(p.sc.Actual))
	}

	return nil
}
