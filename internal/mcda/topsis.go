package mcda

import "math"

// TopsisScore is one option's TOPSIS outcome: relative closeness to the
// ideal solution plus the two distances it is derived from.
type TopsisScore struct {
	Name         string  `json:"name"`
	Score        float64 `json:"score"` // d_neg / (d_pos + d_neg), in [0, 1]
	Rank         int     `json:"rank"`
	DistIdeal    float64 `json:"dist_ideal"`
	DistNegIdeal float64 `json:"dist_neg_ideal"`
}

// TopsisResult is the output of the TOPSIS engine, in option input order.
type TopsisResult struct {
	Options  []TopsisScore `json:"options"`
	Ideal    []float64     `json:"ideal"`
	NegIdeal []float64     `json:"neg_ideal"`
}

// ScoreTopsis ranks options by relative closeness to the ideal solution.
//
// The weighted matrix multiplies raw 0–10 scores by criterion weights
// directly, with no vector normalization of the columns first. When
// normalize is true, each column is divided by its Euclidean norm before
// weighting (textbook TOPSIS); this is an explicit opt-in, not the default.
//
// For benefit criteria the ideal is the column max and the negative-ideal
// the column min; cost criteria invert that. If an option is equidistant
// from both references because all options are identical on every criterion
// (d_pos + d_neg == 0), its score is defined as 0.5.
func ScoreTopsis(m *Matrix, normalize bool) *TopsisResult {
	nOpts := len(m.Options)
	nCrit := len(m.Criteria)

	// Weighted matrix.
	weighted := make([][]float64, nOpts)
	for o := range m.Scores {
		row := make([]float64, nCrit)
		copy(row, m.Scores[o])
		weighted[o] = row
	}
	if normalize {
		for i := 0; i < nCrit; i++ {
			var norm float64
			for o := 0; o < nOpts; o++ {
				norm += weighted[o][i] * weighted[o][i]
			}
			norm = math.Sqrt(norm)
			if norm == 0 {
				continue
			}
			for o := 0; o < nOpts; o++ {
				weighted[o][i] /= norm
			}
		}
	}
	for o := 0; o < nOpts; o++ {
		for i := 0; i < nCrit; i++ {
			weighted[o][i] *= m.Weights[i]
		}
	}

	// Per-criterion reference points.
	ideal := make([]float64, nCrit)
	negIdeal := make([]float64, nCrit)
	for i := 0; i < nCrit; i++ {
		colMin, colMax := weighted[0][i], weighted[0][i]
		for o := 1; o < nOpts; o++ {
			if weighted[o][i] < colMin {
				colMin = weighted[o][i]
			}
			if weighted[o][i] > colMax {
				colMax = weighted[o][i]
			}
		}
		if m.Kinds[i] == KindCost {
			ideal[i], negIdeal[i] = colMin, colMax
		} else {
			ideal[i], negIdeal[i] = colMax, colMin
		}
	}

	scores := make([]float64, nOpts)
	result := &TopsisResult{
		Options:  make([]TopsisScore, nOpts),
		Ideal:    ideal,
		NegIdeal: negIdeal,
	}
	for o := 0; o < nOpts; o++ {
		var dPos, dNeg float64
		for i := 0; i < nCrit; i++ {
			dp := weighted[o][i] - ideal[i]
			dn := weighted[o][i] - negIdeal[i]
			dPos += dp * dp
			dNeg += dn * dn
		}
		dPos = math.Sqrt(dPos)
		dNeg = math.Sqrt(dNeg)

		score := 0.5 // degenerate: all options identical on every criterion
		if dPos+dNeg > 0 {
			score = dNeg / (dPos + dNeg)
		}
		scores[o] = score
		result.Options[o] = TopsisScore{
			Name:         m.Options[o],
			Score:        score,
			DistIdeal:    dPos,
			DistNegIdeal: dNeg,
		}
	}

	ranks := rankDescending(scores)
	for o := range result.Options {
		result.Options[o].Rank = ranks[o]
	}
	return result
}
