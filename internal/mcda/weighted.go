package mcda

import "sort"

// RankedOption is one option's score and 1-based rank for a given method.
// Rank 1 is the highest score.
type RankedOption struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

// WeightedResult is the output of the weighted scoring engine, in option
// input order.
type WeightedResult struct {
	Options []RankedOption `json:"options"`
}

// ScoreWeighted computes the weighted sum of each option's raw scores:
//
//	score(o) = Σ_i scores[o][i] * weight[i]
//
// Criterion kind does not invert the formula — callers orient raw scores so
// that higher is better at input time.
func ScoreWeighted(m *Matrix) *WeightedResult {
	totals := weightedTotals(m, m.Weights)
	ranks := rankDescending(totals)

	result := &WeightedResult{Options: make([]RankedOption, len(m.Options))}
	for o, name := range m.Options {
		result.Options[o] = RankedOption{Name: name, Score: totals[o], Rank: ranks[o]}
	}
	return result
}

// weightedTotals computes Σ_i scores[o][i]*weights[i] per option against an
// arbitrary weight vector, so sensitivity scenarios can reuse it.
func weightedTotals(m *Matrix, weights []float64) []float64 {
	totals := make([]float64, len(m.Options))
	for o := range m.Scores {
		var sum float64
		for i, s := range m.Scores[o] {
			sum += s * weights[i]
		}
		totals[o] = sum
	}
	return totals
}

// rankDescending assigns 1-based ranks by descending score. The sort is
// stable, so tied options keep their input order — ties never share a rank.
func rankDescending(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranks := make([]int, len(scores))
	for pos, o := range order {
		ranks[o] = pos + 1
	}
	return ranks
}
