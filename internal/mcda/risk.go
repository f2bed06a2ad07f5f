package mcda

// RiskLevel is the qualitative band a risk score falls into.
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "very_low"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// RiskScore is one option's risk-adjusted outcome.
type RiskScore struct {
	Name          string    `json:"name"`
	BaseScore     float64   `json:"base_score"`
	RiskScore     float64   `json:"risk_score"` // mean(probability * impact)
	Level         RiskLevel `json:"risk_level"`
	AdjustedScore float64   `json:"adjusted_score"`
	Rank          int       `json:"rank"`
}

// RiskResult is the output of the risk adjuster, in option input order.
type RiskResult struct {
	Scores []RiskScore `json:"options"`
}

// riskPenalty caps the reduction a fully risky option takes: adjusted =
// base * (1 - risk*0.3), so at most 30% comes off the base score.
const riskPenalty = 0.3

// neutralRiskFactor substitutes for an option with no identified risks,
// rather than treating an empty list as an error or as zero risk.
var neutralRiskFactor = RiskFactor{Probability: 0.3, Impact: 0.4}

// AdjustRisk folds each option's risk factors into its base score. The base
// defaults to the weighted score when baseScores is nil; callers may pass a
// different base (e.g. TOPSIS closeness) and the same multiplier applies.
// factors is keyed by option name; options absent from it get the neutral
// default factor.
func AdjustRisk(m *Matrix, baseScores []float64, factors map[string][]RiskFactor) *RiskResult {
	if baseScores == nil {
		baseScores = weightedTotals(m, m.Weights)
	}

	n := len(m.Options)
	result := &RiskResult{Scores: make([]RiskScore, n)}
	adjusted := make([]float64, n)
	for o, name := range m.Options {
		risk := meanRisk(factors[name])
		adj := baseScores[o] * (1.0 - risk*riskPenalty)
		adjusted[o] = adj
		result.Scores[o] = RiskScore{
			Name:          name,
			BaseScore:     baseScores[o],
			RiskScore:     risk,
			Level:         riskLevel(risk),
			AdjustedScore: adj,
		}
	}

	ranks := rankDescending(adjusted)
	for o := range result.Scores {
		result.Scores[o].Rank = ranks[o]
	}
	return result
}

// meanRisk averages probability*impact over the option's risk factors,
// substituting the neutral default when none were supplied.
func meanRisk(factors []RiskFactor) float64 {
	if len(factors) == 0 {
		factors = []RiskFactor{neutralRiskFactor}
	}
	var sum float64
	for _, f := range factors {
		sum += f.Probability * f.Impact
	}
	return sum / float64(len(factors))
}

// riskLevel maps a 0–1 risk score to its qualitative band.
func riskLevel(risk float64) RiskLevel {
	switch {
	case risk < 0.2:
		return RiskVeryLow
	case risk < 0.4:
		return RiskLow
	case risk < 0.6:
		return RiskModerate
	case risk < 0.8:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}
