// seed_analyses.go — standalone script to post decision requests from a JSON file to the Verdict API.
//
// Usage:
//
//	go run scripts/seed_analyses.go -file decisions.json -api http://localhost:8700 -client seed
//
// The input file holds an array of analysis requests:
//
//	[
//	  {
//	    "method": "topsis",
//	    "criteria": [{"name": "cost", "weight": 0.5, "kind": "cost"}, ...],
//	    "options": [{"name": "vendor-a", "scores": {"cost": 3, ...}}, ...]
//	  }
//	]
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

type criterion struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Kind   string  `json:"kind"`
}

type option struct {
	Name   string             `json:"name"`
	Scores map[string]float64 `json:"scores"`
}

type analysisRequest struct {
	Method                     string      `json:"method,omitempty"`
	Criteria                   []criterion `json:"criteria"`
	Options                    []option    `json:"options"`
	IncludeRiskAnalysis        bool        `json:"include_risk_analysis,omitempty"`
	IncludeSensitivityAnalysis bool        `json:"include_sensitivity_analysis,omitempty"`
}

func main() {
	filePath := flag.String("file", "decisions.json", "path to decision requests file")
	apiURL := flag.String("api", "http://localhost:8700", "Verdict API base URL")
	clientID := flag.String("client", "seed", "X-Client-ID header value")
	dryRun := flag.Bool("dry-run", false, "print requests without posting")
	flag.Parse()

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read %s: %v", *filePath, err)
	}

	var requests []analysisRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		log.Fatalf("parse %s: %v", *filePath, err)
	}

	log.Printf("parsed %d requests from %s", len(requests), *filePath)

	if *dryRun {
		for i, req := range requests {
			method := req.Method
			if method == "" {
				method = "default"
			}
			fmt.Printf("[%d] method=%s, %d criteria, %d options\n", i+1, method, len(req.Criteria), len(req.Options))
		}
		return
	}

	client := &http.Client{}
	created, skipped := 0, 0
	for i, req := range requests {
		body, _ := json.Marshal(req)
		httpReq, err := http.NewRequest("POST", *apiURL+"/api/v1/analyses", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip request %d: %v", i+1, err)
			skipped++
			continue
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("X-Client-ID", *clientID)

		resp, err := client.Do(httpReq)
		if err != nil {
			log.Printf("skip request %d: %v", i+1, err)
			skipped++
			continue
		}

		if resp.StatusCode == http.StatusCreated {
			var result struct {
				ID          string `json:"id"`
				Recommended string `json:"recommended"`
			}
			_ = json.NewDecoder(resp.Body).Decode(&result)
			log.Printf("created %s: recommended %q", result.ID, result.Recommended)
			created++
		} else {
			log.Printf("skip request %d: status %d", i+1, resp.StatusCode)
			skipped++
		}
		resp.Body.Close()
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}
