package models

// Confidence levels a model may report.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// ConfidenceLevels lists the accepted confidence values.
var ConfidenceLevels = []string{ConfidenceLow, ConfidenceMedium, ConfidenceHigh}

// Prompt is a single system+user exchange sent to the completion API.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Answer is the outcome of asking the model for a JSON document.
// When Parsed is false, Value is the zero value and Raw holds the model text.
type Answer[T any] struct {
	Value  T
	Raw    string
	Parsed bool
}

// ExtractionWarning is returned with 200 when the model output was not JSON.
type ExtractionWarning struct {
	Warning string `json:"warning"`
	Raw     string `json:"raw"`
}

// ExtractionWarningMessage is the fixed text of ExtractionWarning.Warning.
const ExtractionWarningMessage = "Could not parse model output as JSON. Returning raw output."
