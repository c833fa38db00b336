package model

// RetrievedChunk is one span of syllabus text returned by the vector index.
// Score is distance-like: lower means a closer match.
type RetrievedChunk struct {
	Score    float64
	Text     string
	Metadata map[string]interface{}
}

// IndexChunk is the unit handed to the index during ingestion.
type IndexChunk struct {
	Text   string
	Source string
	Page   int
}

// SourceRef is one citation entry of a packed context bundle. Index is the
// 1-based position at which the excerpt appears in the bundle text.
type SourceRef struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Page  *int    `json:"page,omitempty"`
	Score float64 `json:"score"`
}

// ContextBundle is the packed, citation-annotated evidence passed to the
// generation backend.
type ContextBundle struct {
	Text    string
	Sources []SourceRef
}
