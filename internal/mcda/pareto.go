package mcda

// ParetoScore is one option's dominance outcome. EfficiencyScore is the
// weighted score plus a 0.1 bonus for Pareto-efficient options.
type ParetoScore struct {
	Name             string  `json:"name"`
	WeightedScore    float64 `json:"weighted_score"`
	EfficiencyScore  float64 `json:"efficiency_score"`
	Rank             int     `json:"rank"`
	DominanceCount   int     `json:"dominance_count"`
	DominatedByCount int     `json:"dominated_by_count"`
	Efficient        bool    `json:"is_pareto_efficient"`
}

// ParetoResult is the output of the dominance analyzer, in option input order.
type ParetoResult struct {
	Options []ParetoScore `json:"options"`
}

// efficiencyBonus is added to the weighted score of Pareto-efficient options
// so the efficiency ranking separates the frontier from dominated options.
const efficiencyBonus = 0.1

// AnalyzePareto computes strict dominance relationships between options and
// ranks them by efficiency-adjusted weighted score.
//
// Option A strictly dominates option B only when A's raw score beats B's on
// every criterion — a tie on any criterion breaks dominance. An option is
// Pareto-efficient when nothing strictly dominates it, so dominated_by > 0
// always implies inefficient. O(n^2) dominance check, fine for validated
// input sizes.
func AnalyzePareto(m *Matrix) *ParetoResult {
	n := len(m.Options)
	weighted := weightedTotals(m, m.Weights)

	result := &ParetoResult{Options: make([]ParetoScore, n)}
	scores := make([]float64, n)
	for a := 0; a < n; a++ {
		ps := ParetoScore{Name: m.Options[a], WeightedScore: weighted[a]}
		for b := 0; b < n; b++ {
			if a == b {
				continue
			}
			if strictlyDominates(m.Scores[a], m.Scores[b]) {
				ps.DominanceCount++
			}
			if strictlyDominates(m.Scores[b], m.Scores[a]) {
				ps.DominatedByCount++
			}
		}
		ps.Efficient = ps.DominatedByCount == 0
		ps.EfficiencyScore = ps.WeightedScore
		if ps.Efficient {
			ps.EfficiencyScore += efficiencyBonus
		}
		scores[a] = ps.EfficiencyScore
		result.Options[a] = ps
	}

	ranks := rankDescending(scores)
	for o := range result.Options {
		result.Options[o].Rank = ranks[o]
	}
	return result
}

// strictlyDominates returns true if a beats b on every criterion.
func strictlyDominates(a, b []float64) bool {
	for i := range a {
		if a[i] <= b[i] {
			return false
		}
	}
	return true
}
