package mcda

import "log/slog"

// Method selects which engine ranks the options. The set is closed; the
// orchestrator dispatches with an exhaustive switch rather than a string
// lookup.
type Method string

const (
	MethodWeightedScoring Method = "weighted_scoring"
	MethodTopsis          Method = "topsis"
	MethodPareto          Method = "pareto"
	MethodRiskAdjusted    Method = "risk_adjusted"
)

// ParseMethod maps a request selector onto a Method. "multi_objective" is an
// accepted alias for pareto.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "weighted_scoring":
		return MethodWeightedScoring, nil
	case "topsis":
		return MethodTopsis, nil
	case "pareto", "multi_objective":
		return MethodPareto, nil
	case "risk_adjusted":
		return MethodRiskAdjusted, nil
	default:
		return "", &UnsupportedMethodError{Method: s}
	}
}

// Request is one complete analysis request: the decision inputs, the method
// selector, and the optional add-on analyses.
type Request struct {
	Criteria []Criterion `json:"criteria"`
	Options  []Option    `json:"options"`
	Method   Method      `json:"method"`

	// TOPSIS only: divide each criterion column by its Euclidean norm
	// before weighting. Off by default.
	NormalizeTopsis bool `json:"normalize_topsis,omitempty"`

	IncludeRiskAnalysis        bool `json:"include_risk_analysis,omitempty"`
	IncludeSensitivityAnalysis bool `json:"include_sensitivity_analysis,omitempty"`
}

// Report is the structured result of one analysis: the matrix snapshot, the
// chosen method's ranking (best first), and whichever extras were requested.
// It carries numbers and closed labels only; prose synthesis happens outside
// this package.
type Report struct {
	Method Method  `json:"method"`
	Matrix *Matrix `json:"matrix"`

	// Ranked holds the chosen method's per-option outcome sorted by rank.
	Ranked []RankedOption `json:"ranked"`

	Weighted    *WeightedResult    `json:"weighted,omitempty"`
	Topsis      *TopsisResult      `json:"topsis,omitempty"`
	Pareto      *ParetoResult      `json:"pareto,omitempty"`
	Risk        *RiskResult        `json:"risk,omitempty"`
	Sensitivity *SensitivityResult `json:"sensitivity,omitempty"`
}

// Recommended returns the rank-1 option name.
func (r *Report) Recommended() string {
	if len(r.Ranked) == 0 {
		return ""
	}
	return r.Ranked[0].Name
}

// Analyzer builds one decision matrix per request and dispatches it to the
// requested engines.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze validates the request, runs the selected method plus any optional
// analyses, and assembles the report. The first validation failure is
// returned before any engine runs; a request either completes fully or not
// at all.
func (a *Analyzer) Analyze(req *Request) (*Report, error) {
	method, err := ParseMethod(string(req.Method))
	if err != nil {
		return nil, err
	}

	m, err := NewMatrix(req.Criteria, req.Options)
	if err != nil {
		return nil, err
	}

	report := &Report{Method: method, Matrix: m}
	riskFactors := optionRiskFactors(req.Options)

	switch method {
	case MethodWeightedScoring:
		report.Weighted = ScoreWeighted(m)
		report.Ranked = byRank(report.Weighted.Options)
	case MethodTopsis:
		report.Topsis = ScoreTopsis(m, req.NormalizeTopsis)
		ranked := make([]RankedOption, len(report.Topsis.Options))
		for i, ts := range report.Topsis.Options {
			ranked[i] = RankedOption{Name: ts.Name, Score: ts.Score, Rank: ts.Rank}
		}
		report.Ranked = byRank(ranked)
	case MethodPareto:
		report.Pareto = AnalyzePareto(m)
		ranked := make([]RankedOption, len(report.Pareto.Options))
		for i, ps := range report.Pareto.Options {
			ranked[i] = RankedOption{Name: ps.Name, Score: ps.EfficiencyScore, Rank: ps.Rank}
		}
		report.Ranked = byRank(ranked)
	case MethodRiskAdjusted:
		report.Risk = AdjustRisk(m, nil, riskFactors)
		ranked := make([]RankedOption, len(report.Risk.Scores))
		for i, rs := range report.Risk.Scores {
			ranked[i] = RankedOption{Name: rs.Name, Score: rs.AdjustedScore, Rank: rs.Rank}
		}
		report.Ranked = byRank(ranked)
	}

	if req.IncludeRiskAnalysis && report.Risk == nil {
		report.Risk = AdjustRisk(m, nil, riskFactors)
	}
	if req.IncludeSensitivityAnalysis {
		report.Sensitivity = AnalyzeSensitivity(m)
	}

	a.logger.Debug("analysis complete",
		"method", string(method),
		"criteria", len(m.Criteria),
		"options", len(m.Options),
		"recommended", report.Recommended(),
	)
	return report, nil
}

func optionRiskFactors(options []Option) map[string][]RiskFactor {
	factors := make(map[string][]RiskFactor, len(options))
	for _, o := range options {
		factors[o.Name] = o.RiskFactors
	}
	return factors
}

// byRank reorders per-option results so rank 1 comes first.
func byRank(options []RankedOption) []RankedOption {
	sorted := make([]RankedOption, len(options))
	for _, o := range options {
		sorted[o.Rank-1] = o
	}
	return sorted
}
