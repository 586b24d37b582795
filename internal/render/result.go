package render

// Outcome tells how one input line was handled.
type Outcome string

const (
	// OutcomeMatched means a built-in recognizer produced the label.
	OutcomeMatched Outcome = "matched"

	// OutcomeScripted means the user script supplied the label.
	OutcomeScripted Outcome = "scripted"

	// OutcomeFallback means the URL parsed but nothing claimed it; it
	// rendered as an angle-bracket autolink.
	OutcomeFallback Outcome = "fallback"

	// OutcomeVerbatim means the line parsed with a non-HTTP scheme
	// and passed through unchanged.
	OutcomeVerbatim Outcome = "verbatim"

	// OutcomeSkipped means an ignore rule matched; the line passed
	// through unchanged.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeDropped means the line did not parse as an absolute URL.
	// It was logged and produced no output.
	OutcomeDropped Outcome = "dropped"
)

// Result is the rendering of one input line.
type Result struct {
	Input   string  // the URL text as given, surrounding space trimmed
	Line    int     // 1-based input line number
	Label   string  // bracket body for matched and scripted outcomes
	Output  string  // the rendered line; empty when dropped
	Outcome Outcome
}

// Emitted reports whether the result contributes an output line.
func (r Result) Emitted() bool {
	return r.Outcome != OutcomeDropped
}

// FilterOutcome returns only the results with the given outcome.
func FilterOutcome(results []Result, o Outcome) []Result {
	var picked []Result
	for _, r := range results {
		if r.Outcome == o {
			picked = append(picked, r)
		}
	}
	return picked
}

// Summary counts line outcomes across a run.
type Summary struct {
	Total    int // input lines seen
	Matched  int // labeled by a recognizer
	Scripted int // labeled by the user script
	Fallback int // rendered as autolinks
	Verbatim int // passed through for their scheme
	Skipped  int // passed through by ignore rules
	Dropped  int // unparseable, omitted from output
}

// Summarize tallies a slice of results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeMatched:
			s.Matched++
		case OutcomeScripted:
			s.Scripted++
		case OutcomeFallback:
			s.Fallback++
		case OutcomeVerbatim:
			s.Verbatim++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeDropped:
			s.Dropped++
		}
	}
	return s
}

// Labeled returns how many lines ended up with a compact label.
func (s Summary) Labeled() int {
	return s.Matched + s.Scripted
}
