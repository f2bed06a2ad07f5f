package events

const (
	StreamName   = "VERDICT_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectAnalysisCompleted(analysisID string) string {
	return "verdict.analysis." + analysisID + ".completed"
}

func SubjectAnalysisFailed(requestedBy string) string {
	return "verdict.analysis." + requestedBy + ".failed"
}
