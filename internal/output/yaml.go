package output

import (
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct{}

// yamlOutput is the YAML structure for output.
type yamlOutput struct {
	GeneratedAt string        `yaml:"generated_at"`
	Profile     string        `yaml:"profile,omitempty"`
	Summary     yamlSummary   `yaml:"summary"`
	Results     []yamlResult  `yaml:"results"`
	Skipped     []yamlSkipped `yaml:"skipped,omitempty"`
}

type yamlSummary struct {
	Total    int `yaml:"total"`
	Matched  int `yaml:"matched"`
	Scripted int `yaml:"scripted"`
	Fallback int `yaml:"fallback"`
	Verbatim int `yaml:"verbatim"`
	Skipped  int `yaml:"skipped"`
	Dropped  int `yaml:"dropped"`
}

type yamlResult struct {
	Input   string `yaml:"input"`
	Outcome string `yaml:"outcome"`
	Label   string `yaml:"label,omitempty"`
	Output  string `yaml:"output,omitempty"`
	Line    int    `yaml:"line"`
}

type yamlSkipped struct {
	URL  string `yaml:"url"`
	Kind string `yaml:"kind"`
	Rule string `yaml:"rule"`
	Line int    `yaml:"line"`
}

// Format implements Formatter.
func (*YAMLFormatter) Format(report *Report) ([]byte, error) {
	output := yamlOutput{
		GeneratedAt: report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Profile:     report.Profile,
		Summary: yamlSummary{
			Total:    report.Summary.Total,
			Matched:  report.Summary.Matched,
			Scripted: report.Summary.Scripted,
			Fallback: report.Summary.Fallback,
			Verbatim: report.Summary.Verbatim,
			Skipped:  report.Summary.Skipped,
			Dropped:  report.Summary.Dropped,
		},
		Results: make([]yamlResult, 0, len(report.Results)),
	}

	for _, r := range report.Results {
		output.Results = append(output.Results, yamlResult{
			Line:    r.Line,
			Input:   r.Input,
			Outcome: string(r.Outcome),
			Label:   r.Label,
			Output:  r.Output,
		})
	}

	for _, s := range report.Skipped {
		output.Skipped = append(output.Skipped, yamlSkipped{
			URL:  s.URL,
			Line: s.Line,
			Kind: s.Kind,
			Rule: s.Rule,
		})
	}

	return yaml.Marshal(output)
}
