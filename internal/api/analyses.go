package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Verdict/internal/config"
	"github.com/MikeSquared-Agency/Verdict/internal/events"
	"github.com/MikeSquared-Agency/Verdict/internal/mcda"
	"github.com/MikeSquared-Agency/Verdict/internal/store"
)

type AnalysesHandler struct {
	store    store.Store
	events   events.Client
	analyzer *mcda.Analyzer
	cfg      *config.Config
}

func NewAnalysesHandler(s store.Store, ev events.Client, analyzer *mcda.Analyzer, cfg *config.Config) *AnalysesHandler {
	return &AnalysesHandler{store: s, events: ev, analyzer: analyzer, cfg: cfg}
}

type CreateAnalysisRequest struct {
	Method                     string           `json:"method,omitempty"`
	Criteria                   []mcda.Criterion `json:"criteria"`
	Options                    []mcda.Option    `json:"options"`
	NormalizeTopsis            bool             `json:"normalize_topsis,omitempty"`
	IncludeRiskAnalysis        bool             `json:"include_risk_analysis,omitempty"`
	IncludeSensitivityAnalysis bool             `json:"include_sensitivity_analysis,omitempty"`
}

func (h *AnalysesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Method == "" {
		req.Method = h.cfg.Analysis.DefaultMethod
	}
	if len(req.Criteria) > h.cfg.Analysis.MaxCriteria {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("too many criteria (max %d)", h.cfg.Analysis.MaxCriteria),
		})
		return
	}
	if len(req.Options) > h.cfg.Analysis.MaxOptions {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("too many options (max %d)", h.cfg.Analysis.MaxOptions),
		})
		return
	}

	requestedBy := r.Header.Get("X-Client-ID")

	report, err := h.analyzer.Analyze(&mcda.Request{
		Criteria:                   req.Criteria,
		Options:                    req.Options,
		Method:                     mcda.Method(req.Method),
		NormalizeTopsis:            req.NormalizeTopsis,
		IncludeRiskAnalysis:        req.IncludeRiskAnalysis,
		IncludeSensitivityAnalysis: req.IncludeSensitivityAnalysis,
	})
	if err != nil {
		if h.events != nil {
			_ = h.events.Publish(events.SubjectAnalysisFailed(requestedBy), events.AnalysisFailedEvent{
				RequestedBy: requestedBy,
				Method:      req.Method,
				Reason:      err.Error(),
				Timestamp:   time.Now().UTC(),
			})
		}
		writeJSON(w, analysisErrorStatus(err), map[string]string{"error": err.Error()})
		return
	}

	analysis := &store.Analysis{
		RequestedBy: requestedBy,
		Method:      string(report.Method),
		Criteria:    req.Criteria,
		Options:     req.Options,
		Report:      report,
		Recommended: report.Recommended(),
	}
	if report.Sensitivity != nil {
		analysis.Robustness = &report.Sensitivity.Robustness
	}

	if err := h.store.CreateAnalysis(r.Context(), analysis); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectAnalysisCompleted(analysis.ID.String()), events.AnalysisCompletedEvent{
			AnalysisID:  analysis.ID.String(),
			RequestedBy: requestedBy,
			Method:      analysis.Method,
			Recommended: analysis.Recommended,
			OptionCount: len(req.Options),
			Robustness:  analysis.Robustness,
			Timestamp:   time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusCreated, analysis)
}

func (h *AnalysesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid analysis id"})
		return
	}

	analysis, err := h.store.GetAnalysis(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if analysis == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "analysis not found"})
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (h *AnalysesHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.AnalysisFilter{
		Method:      r.URL.Query().Get("method"),
		RequestedBy: r.URL.Query().Get("requested_by"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	analyses, err := h.store.ListAnalyses(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if analyses == nil {
		analyses = []*store.Analysis{}
	}
	writeJSON(w, http.StatusOK, analyses)
}

// analysisErrorStatus maps engine errors onto HTTP statuses. Every
// validation failure is the caller's to fix.
func analysisErrorStatus(err error) int {
	var (
		weightErr       *mcda.WeightSumError
		dupErr          *mcda.DuplicateNameError
		incompleteErr   *mcda.IncompleteScoresError
		rangeErr        *mcda.RangeError
		insufficientErr *mcda.InsufficientInputError
		methodErr       *mcda.UnsupportedMethodError
	)
	switch {
	case errors.As(err, &weightErr),
		errors.As(err, &dupErr),
		errors.As(err, &incompleteErr),
		errors.As(err, &rangeErr),
		errors.As(err, &insufficientErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &methodErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
