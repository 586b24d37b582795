package output

import (
	"encoding/json"

	"github.com/mdlink/mdlink/internal/render"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct{}

// jsonOutput is the JSON structure for output.
type jsonOutput struct {
	GeneratedAt string        `json:"generated_at"`
	Profile     string        `json:"profile,omitempty"`
	Summary     jsonSummary   `json:"summary"`
	Results     []jsonResult  `json:"results"`
	Skipped     []jsonSkipped `json:"skipped,omitempty"`
}

type jsonSummary struct {
	Total    int `json:"total"`
	Matched  int `json:"matched"`
	Scripted int `json:"scripted"`
	Fallback int `json:"fallback"`
	Verbatim int `json:"verbatim"`
	Skipped  int `json:"skipped"`
	Dropped  int `json:"dropped"`
}

type jsonResult struct {
	Line    int    `json:"line"`
	Input   string `json:"input"`
	Outcome string `json:"outcome"`
	Label   string `json:"label,omitempty"`
	Output  string `json:"output,omitempty"`
}

type jsonSkipped struct {
	URL  string `json:"url"`
	Line int    `json:"line"`
	Kind string `json:"kind"`
	Rule string `json:"rule"`
}

// Format implements Formatter.
func (*JSONFormatter) Format(report *Report) ([]byte, error) {
	output := jsonOutput{
		GeneratedAt: report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Profile:     report.Profile,
		Summary: jsonSummary{
			Total:    report.Summary.Total,
			Matched:  report.Summary.Matched,
			Scripted: report.Summary.Scripted,
			Fallback: report.Summary.Fallback,
			Verbatim: report.Summary.Verbatim,
			Skipped:  report.Summary.Skipped,
			Dropped:  report.Summary.Dropped,
		},
		Results: make([]jsonResult, 0, len(report.Results)),
	}

	for _, r := range report.Results {
		output.Results = append(output.Results, jsonResult{
			Line:    r.Line,
			Input:   r.Input,
			Outcome: string(r.Outcome),
			Label:   r.Label,
			Output:  r.Output,
		})
	}

	for _, s := range report.Skipped {
		output.Skipped = append(output.Skipped, jsonSkipped{
			URL:  s.URL,
			Line: s.Line,
			Kind: s.Kind,
			Rule: s.Rule,
		})
	}

	return json.MarshalIndent(output, "", "  ")
}

// filterByOutcome returns the results that landed on one of the given outcomes.
func filterByOutcome(results []render.Result, outcomes ...render.Outcome) []render.Result {
	outcomeSet := map[render.Outcome]bool{}
	for _, o := range outcomes {
		outcomeSet[o] = true
	}

	var filtered []render.Result
	for _, r := range results {
		if outcomeSet[r.Outcome] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
