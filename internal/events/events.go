package events

import "time"

// AnalysisCompletedEvent announces a stored analysis: enough for a consumer
// to decide whether to fetch the full report.
type AnalysisCompletedEvent struct {
	AnalysisID  string    `json:"analysis_id"`
	RequestedBy string    `json:"requested_by,omitempty"`
	Method      string    `json:"method"`
	Recommended string    `json:"recommended"`
	OptionCount int       `json:"option_count"`
	Robustness  *float64  `json:"robustness,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// AnalysisFailedEvent announces a request rejected during validation.
type AnalysisFailedEvent struct {
	RequestedBy string    `json:"requested_by,omitempty"`
	Method      string    `json:"method,omitempty"`
	Reason      string    `json:"reason"`
	Timestamp   time.Time `json:"timestamp"`
}
