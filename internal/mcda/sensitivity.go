package mcda

import "math"

// Stability labels derived from the robustness score.
const (
	StabilityHigh      = "highly stable"
	StabilityModerate  = "moderately stable"
	StabilitySensitive = "sensitive"
)

// SensitivityScenario is one weight perturbation: the named criterion's
// weight is raised 50%, the others absorb the increase proportionally, and
// every option is re-scored and re-ranked under the new vector.
type SensitivityScenario struct {
	Criterion     string         `json:"criterion"`
	Weights       []float64      `json:"weights"`
	Options       []RankedOption `json:"options"`
	RankingChange int            `json:"ranking_change"` // Σ_option |old_rank - new_rank|
}

// SensitivityResult aggregates all perturbation scenarios into a robustness
// measure of the baseline ranking.
type SensitivityResult struct {
	Scenarios        []SensitivityScenario `json:"scenarios"`
	AvgRankingChange float64               `json:"avg_ranking_change"`
	Robustness       float64               `json:"robustness_score"` // in [0, 1]
	Stability        string                `json:"stability"`
}

// weightFloor keeps decreased weights strictly positive.
const weightFloor = 0.01

// AnalyzeSensitivity measures how stable the weighted ranking is when each
// criterion in turn is emphasized by 50%. The matrix itself is never
// touched: every scenario derives a fresh weight vector, renormalized to sum
// exactly to 1.0, and the baseline ranking stays available for comparison.
//
// robustness = max(0, 1 - avg_ranking_change / option_count); > 0.8 reads as
// highly stable, > 0.6 moderately stable, anything else sensitive.
func AnalyzeSensitivity(m *Matrix) *SensitivityResult {
	baseRanks := rankDescending(weightedTotals(m, m.Weights))

	result := &SensitivityResult{Scenarios: make([]SensitivityScenario, len(m.Criteria))}
	var totalChange float64
	for i := range m.Criteria {
		weights := perturbWeights(m.Weights, i)
		totals := weightedTotals(m, weights)
		ranks := rankDescending(totals)

		scenario := SensitivityScenario{
			Criterion: m.Criteria[i],
			Weights:   weights,
			Options:   make([]RankedOption, len(m.Options)),
		}
		for o, name := range m.Options {
			scenario.Options[o] = RankedOption{Name: name, Score: totals[o], Rank: ranks[o]}
			scenario.RankingChange += abs(baseRanks[o] - ranks[o])
		}
		totalChange += float64(scenario.RankingChange)
		result.Scenarios[i] = scenario
	}

	result.AvgRankingChange = totalChange / float64(len(m.Criteria))
	result.Robustness = math.Max(0.0, 1.0-result.AvgRankingChange/float64(len(m.Options)))
	result.Stability = stabilityLabel(result.Robustness)
	return result
}

// perturbWeights raises weight i by 50% and spreads the increase as a
// decrease across the other criteria, each losing its proportional share of
// the remaining total but never dropping below the floor. The vector is then
// renormalized to sum exactly to 1.0.
func perturbWeights(weights []float64, i int) []float64 {
	out := make([]float64, len(weights))
	copy(out, weights)

	increase := weights[i] * 0.5
	out[i] = weights[i] + increase

	var otherSum float64
	for j, w := range weights {
		if j != i {
			otherSum += w
		}
	}
	if otherSum > 0 {
		for j := range out {
			if j == i {
				continue
			}
			out[j] = weights[j] - increase*(weights[j]/otherSum)
			if out[j] < weightFloor {
				out[j] = weightFloor
			}
		}
	}

	var sum float64
	for _, w := range out {
		sum += w
	}
	for j := range out {
		out[j] /= sum
	}
	return out
}

func stabilityLabel(robustness float64) string {
	switch {
	case robustness > 0.8:
		return StabilityHigh
	case robustness > 0.6:
		return StabilityModerate
	default:
		return StabilitySensitive
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
