package model

// GenerationResult is the raw outcome of one generation-backend call.
// Confidence is a heuristic estimate in [0,1], not a calibrated probability.
type GenerationResult struct {
	Answer     string
	Confidence float64
}

// Answer is the full package returned for one question.
type Answer struct {
	Answer                string      `json:"answer"`
	Sources               []SourceRef `json:"sources"`
	Confidence            float64     `json:"confidence"`
	ConfidenceExplanation string      `json:"confidence_explanation"`
	FollowUp              string      `json:"follow_up_question,omitempty"`
}
