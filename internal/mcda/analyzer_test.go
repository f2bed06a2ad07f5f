package mcda

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedRequest(method Method) *Request {
	return &Request{
		Criteria: seedCriteria(),
		Options:  seedOptions(),
		Method:   method,
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"weighted_scoring", MethodWeightedScoring, false},
		{"topsis", MethodTopsis, false},
		{"pareto", MethodPareto, false},
		{"multi_objective", MethodPareto, false},
		{"risk_adjusted", MethodRiskAdjusted, false},
		{"electre", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if tt.wantErr {
			var methodErr *UnsupportedMethodError
			if !errors.As(err, &methodErr) {
				t.Errorf("ParseMethod(%q): expected UnsupportedMethodError, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMethod(%q) = (%v, %v), want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestAnalyzeDispatchesEachMethod(t *testing.T) {
	a := NewAnalyzer(discardLogger())

	tests := []struct {
		method Method
		check  func(t *testing.T, r *Report)
	}{
		{MethodWeightedScoring, func(t *testing.T, r *Report) {
			if r.Weighted == nil {
				t.Error("expected weighted result")
			}
		}},
		{MethodTopsis, func(t *testing.T, r *Report) {
			if r.Topsis == nil {
				t.Error("expected topsis result")
			}
		}},
		{MethodPareto, func(t *testing.T, r *Report) {
			if r.Pareto == nil {
				t.Error("expected pareto result")
			}
		}},
		{MethodRiskAdjusted, func(t *testing.T, r *Report) {
			if r.Risk == nil {
				t.Error("expected risk result")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			report, err := a.Analyze(seedRequest(tt.method))
			if err != nil {
				t.Fatalf("Analyze failed: %v", err)
			}
			tt.check(t, report)

			if report.Matrix == nil {
				t.Fatal("expected matrix snapshot in report")
			}
			if len(report.Ranked) != 2 {
				t.Fatalf("expected 2 ranked options, got %d", len(report.Ranked))
			}
			for i, ro := range report.Ranked {
				if ro.Rank != i+1 {
					t.Errorf("ranked list out of order at %d: %+v", i, ro)
				}
			}
			if report.Recommended() == "" {
				t.Error("expected a recommended option")
			}
		})
	}
}

func TestAnalyzeSeedScenarioRecommendsA(t *testing.T) {
	a := NewAnalyzer(discardLogger())
	for _, method := range []Method{MethodWeightedScoring, MethodTopsis} {
		report, err := a.Analyze(seedRequest(method))
		if err != nil {
			t.Fatalf("%s: Analyze failed: %v", method, err)
		}
		if report.Recommended() != "A" {
			t.Errorf("%s: expected A recommended, got %s", method, report.Recommended())
		}
	}
}

func TestAnalyzeUnsupportedMethod(t *testing.T) {
	a := NewAnalyzer(discardLogger())
	_, err := a.Analyze(seedRequest("promethee"))
	var methodErr *UnsupportedMethodError
	if !errors.As(err, &methodErr) {
		t.Fatalf("expected UnsupportedMethodError, got %v", err)
	}
}

func TestAnalyzePropagatesValidationError(t *testing.T) {
	a := NewAnalyzer(discardLogger())
	req := seedRequest(MethodWeightedScoring)
	req.Criteria[0].Weight = 0.2 // sum 0.6, outside tolerance

	_, err := a.Analyze(req)
	var sumErr *WeightSumError
	if !errors.As(err, &sumErr) {
		t.Fatalf("expected WeightSumError, got %v", err)
	}
}

func TestAnalyzeOptionalFlags(t *testing.T) {
	a := NewAnalyzer(discardLogger())

	req := seedRequest(MethodWeightedScoring)
	req.IncludeRiskAnalysis = true
	req.IncludeSensitivityAnalysis = true

	report, err := a.Analyze(req)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if report.Risk == nil {
		t.Error("expected risk analysis in report")
	}
	if report.Sensitivity == nil {
		t.Error("expected sensitivity analysis in report")
	}

	plain, err := a.Analyze(seedRequest(MethodWeightedScoring))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if plain.Risk != nil || plain.Sensitivity != nil {
		t.Error("optional analyses must be absent unless requested")
	}
}

func TestAnalyzeRiskMethodNotDuplicatedByFlag(t *testing.T) {
	a := NewAnalyzer(discardLogger())
	req := seedRequest(MethodRiskAdjusted)
	req.IncludeRiskAnalysis = true

	report, err := a.Analyze(req)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if report.Risk == nil {
		t.Fatal("expected risk result")
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := NewAnalyzer(discardLogger())

	req := seedRequest(MethodTopsis)
	req.IncludeRiskAnalysis = true
	req.IncludeSensitivityAnalysis = true

	first, err := a.Analyze(req)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := a.Analyze(seedRequestWithExtras())
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		againJSON, err := json.Marshal(again)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(firstJSON) != string(againJSON) {
			t.Fatalf("run %d produced different output", i)
		}
	}
}

func seedRequestWithExtras() *Request {
	req := seedRequest(MethodTopsis)
	req.IncludeRiskAnalysis = true
	req.IncludeSensitivityAnalysis = true
	return req
}
