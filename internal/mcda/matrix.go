package mcda

import (
	"strings"
)

// CriterionKind classifies how a criterion's raw scores should be read.
// Only benefit and cost change engine behavior (TOPSIS ideal selection);
// constraint and preference are carried through for the caller.
type CriterionKind string

const (
	KindBenefit    CriterionKind = "benefit"
	KindCost       CriterionKind = "cost"
	KindConstraint CriterionKind = "constraint"
	KindPreference CriterionKind = "preference"
)

// Criterion is one dimension of the decision, with its relative weight.
// Weights across all criteria in a request must sum to 1.0 (±0.05).
type Criterion struct {
	Name         string        `json:"name"`
	Weight       float64       `json:"weight"`
	Kind         CriterionKind `json:"kind"`
	MinThreshold *float64      `json:"min_threshold,omitempty"`
	MaxThreshold *float64      `json:"max_threshold,omitempty"`
}

// RiskFactor is one identified risk for an option. Both fields are 0–1.
// Risk factors feed the risk adjuster only; they are not part of the matrix.
type RiskFactor struct {
	Probability float64 `json:"probability"`
	Impact      float64 `json:"impact"`
}

// Option is one alternative under consideration. Scores maps criterion name
// to a raw 0–10 score and must cover every criterion exactly. Callers orient
// scores so that higher is better before submission.
type Option struct {
	Name        string             `json:"name"`
	Scores      map[string]float64 `json:"scores"`
	Confidence  map[string]float64 `json:"confidence,omitempty"`
	RiskFactors []RiskFactor       `json:"risk_factors,omitempty"`
	Assumptions []string           `json:"assumptions,omitempty"`
}

// Matrix is the validated, immutable decision matrix: criterion and option
// names in input order, a dense score grid, and the aligned weight vector.
// It is built once per analysis request and never mutated afterwards — any
// recomputation (sensitivity perturbation) derives a new weight vector and
// leaves the original as the baseline.
type Matrix struct {
	Criteria []string        `json:"criteria"`
	Kinds    []CriterionKind `json:"kinds"`
	Weights  []float64       `json:"weights"`
	Options  []string        `json:"options"`

	// Scores[o][c] is option o's raw score on criterion c.
	Scores [][]float64 `json:"scores"`
}

const (
	scoreMin = 0.0
	scoreMax = 10.0

	weightSumMin = 0.95
	weightSumMax = 1.05
)

// NewMatrix validates criteria and options and builds the decision matrix.
// Pure construction: no side effects, and the first violation found is
// returned as a typed error without building anything.
func NewMatrix(criteria []Criterion, options []Option) (*Matrix, error) {
	if len(criteria) < 2 || len(options) < 2 {
		return nil, &InsufficientInputError{Criteria: len(criteria), Options: len(options)}
	}

	seenCriteria := make(map[string]bool, len(criteria))
	var weightSum float64
	for _, c := range criteria {
		key := strings.ToLower(c.Name)
		if seenCriteria[key] {
			return nil, &DuplicateNameError{Kind: "criterion", Name: c.Name}
		}
		seenCriteria[key] = true

		if c.Weight < 0.0 || c.Weight > 1.0 {
			return nil, &RangeError{Field: "weight", Name: c.Name, Value: c.Weight, Min: 0.0, Max: 1.0}
		}
		weightSum += c.Weight
	}
	if weightSum < weightSumMin || weightSum > weightSumMax {
		return nil, &WeightSumError{Sum: weightSum}
	}

	seenOptions := make(map[string]bool, len(options))
	for _, o := range options {
		key := strings.ToLower(o.Name)
		if seenOptions[key] {
			return nil, &DuplicateNameError{Kind: "option", Name: o.Name}
		}
		seenOptions[key] = true

		for _, c := range criteria {
			score, ok := o.Scores[c.Name]
			if !ok {
				return nil, &IncompleteScoresError{Option: o.Name, Criterion: c.Name}
			}
			if score < scoreMin || score > scoreMax {
				return nil, &RangeError{Field: "score", Name: o.Name + "/" + c.Name, Value: score, Min: scoreMin, Max: scoreMax}
			}
		}
		for name := range o.Scores {
			if !criterionNamed(criteria, name) {
				return nil, &IncompleteScoresError{Option: o.Name, Criterion: name, Unknown: true}
			}
		}
	}

	m := &Matrix{
		Criteria: make([]string, len(criteria)),
		Kinds:    make([]CriterionKind, len(criteria)),
		Weights:  make([]float64, len(criteria)),
		Options:  make([]string, len(options)),
		Scores:   make([][]float64, len(options)),
	}
	for i, c := range criteria {
		m.Criteria[i] = c.Name
		m.Kinds[i] = c.Kind
		m.Weights[i] = c.Weight
	}
	for o, opt := range options {
		m.Options[o] = opt.Name
		row := make([]float64, len(criteria))
		for i, c := range criteria {
			row[i] = opt.Scores[c.Name]
		}
		m.Scores[o] = row
	}
	return m, nil
}

func criterionNamed(criteria []Criterion, name string) bool {
	for _, c := range criteria {
		if c.Name == name {
			return true
		}
	}
	return false
}
