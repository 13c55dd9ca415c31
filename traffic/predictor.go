// SPDX-License-Identifier: MIT

package traffic

import (
	"fmt"
	"math/rand"
	"sort"
)

// Predictor perturbs reported traffic predictions with a seeded probability model.
// Two predictors built with the same seed and probabilities produce the same
// sequence of predictions for the same inputs.
type Predictor struct {
	rng   *rand.Rand
	probs Probabilities
}

// NewPredictor returns a Predictor seeded with seed. It panics if probs is not a
// valid distribution; use Probabilities.Validate to check user input first.
func NewPredictor(seed int64, probs Probabilities) *Predictor {
	if err := probs.Validate(); err != nil {
		panic(fmt.Sprintf("traffic: NewPredictor: %v", err))
	}

	return &Predictor{rng: rand.New(rand.NewSource(seed)), probs: probs}
}

// Predict draws the level used for planning from the reported one.
func (p *Predictor) Predict(reported Level) Level {
	u := p.rng.Float64()
	switch {
	case u < p.probs.Correct:
		return reported
	case u < p.probs.Correct+p.probs.Lower:
		return reported.Lower()
	default:
		return reported.Higher()
	}
}

// PredictDay applies Predict to every road of reported, in road-name order.
func (p *Predictor) PredictDay(reported Day) Day {
	names := make([]string, 0, len(reported))
	for name := range reported {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Day, len(reported))
	for _, name := range names {
		out[name] = p.Predict(reported[name])
	}

	return out
}
