// SPDX-License-Identifier: MIT

package simulate

import "time"

// Summary aggregates one algorithm's outcomes across days.
// Online outcomes have no predicted cost: Planned counts the outcomes that
// do, and MeanPredicted averages over those only.
type Summary struct {
	Algorithm     Algorithm
	Days          int
	Planned       int
	MeanPredicted float64
	MeanReal      float64
	TotalReal     float64
	MeanExpanded  float64
	TotalElapsed  time.Duration
}

// Summarize aggregates reports per algorithm, in order of first appearance.
func Summarize(reports []DayReport) []Summary {
	var order []Algorithm
	acc := make(map[Algorithm]*Summary)
	for _, r := range reports {
		for _, o := range r.Outcomes {
			s, ok := acc[o.Algorithm]
			if !ok {
				s = &Summary{Algorithm: o.Algorithm}
				acc[o.Algorithm] = s
				order = append(order, o.Algorithm)
			}
			s.Days++
			if !o.Online {
				s.Planned++
				s.MeanPredicted += o.PredictedCost
			}
			s.TotalReal += o.RealCost
			s.MeanExpanded += float64(o.Expanded)
			s.TotalElapsed += o.Elapsed
		}
	}

	out := make([]Summary, 0, len(order))
	for _, alg := range order {
		s := acc[alg]
		n := float64(s.Days)
		if s.Planned > 0 {
			s.MeanPredicted /= float64(s.Planned)
		}
		s.MeanReal = s.TotalReal / n
		s.MeanExpanded /= n
		out = append(out, *s)
	}

	return out
}
