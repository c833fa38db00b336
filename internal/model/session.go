package model

import "time"

type Message struct {
	Timestamp             time.Time   `json:"ts"`
	Question              string      `json:"question"`
	Answer                string      `json:"answer"`
	Sources               []SourceRef `json:"sources"`
	Confidence            float64     `json:"confidence"`
	ConfidenceExplanation string      `json:"confidence_explanation"`
	FollowUp              string      `json:"follow_up_question,omitempty"`
}

type SessionInfo struct {
	SessionID    string    `json:"session_id"`
	MessageCount int       `json:"message_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}
