package types

// Severity bands used by rendering clients. Break points are part of the
// response contract: scores are integers in [5,100], so every score maps to
// exactly one band.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityElevated Severity = "elevated"
	SeveritySevere   Severity = "severe"
)

// LikelihoodResult holds the five adverse-condition percentage scores.
// Each score is an integer in [5,100]; a value is never 0 or above 100.
type LikelihoodResult struct {
	VeryHot           int `json:"veryHot"`
	VeryCold          int `json:"veryCold"`
	VeryWindy         int `json:"veryWindy"`
	VeryWet           int `json:"veryWet"`
	VeryUncomfortable int `json:"veryUncomfortable"`
}

// SeverityFor maps a likelihood score to its rendering band
func SeverityFor(score int) Severity {
	switch {
	case score >= 75:
		return SeveritySevere
	case score >= 50:
		return SeverityElevated
	case score >= 25:
		return SeverityModerate
	default:
		return SeverityLow
	}
}
