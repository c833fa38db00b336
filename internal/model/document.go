package model

const (
	DocumentStateUploading  = "uploading"
	DocumentStateUploaded   = "uploaded"
	DocumentStateProcessing = "processing"
	DocumentStateCompleted  = "completed"
	DocumentStateFailed     = "failed"
	DocumentStateDeleted    = "deleted"
)

type DocumentStatus struct {
	DocID    string `json:"doc_id"`
	Filename string `json:"filename"`
	Key      string `json:"-"`
	Size     int64  `json:"size"`
	State    string `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Chunks   int    `json:"chunks"`
	Mtime    int64  `json:"mtime"`
}
