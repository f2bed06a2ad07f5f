package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Verdict/internal/mcda"
)

// Analysis is one persisted decision analysis: the request inputs, the full
// structured report, and the headline outcome columns used for listing.
type Analysis struct {
	ID          uuid.UUID        `json:"id"`
	RequestedBy string           `json:"requested_by"`
	Method      string           `json:"method"`
	Criteria    []mcda.Criterion `json:"criteria"`
	Options     []mcda.Option    `json:"options"`
	Report      *mcda.Report     `json:"report"`
	Recommended string           `json:"recommended"`
	Robustness  *float64         `json:"robustness,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type AnalysisFilter struct {
	Method      string
	RequestedBy string
	Limit       int
	Offset      int
}

type AnalysisStats struct {
	Total           int     `json:"total"`
	WeightedScoring int     `json:"weighted_scoring"`
	Topsis          int     `json:"topsis"`
	Pareto          int     `json:"pareto"`
	RiskAdjusted    int     `json:"risk_adjusted"`
	AvgOptionCount  float64 `json:"avg_option_count"`
}

type Store interface {
	CreateAnalysis(ctx context.Context, a *Analysis) error
	GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error)
	ListAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)
	GetStats(ctx context.Context) (*AnalysisStats, error)

	Close() error
}
