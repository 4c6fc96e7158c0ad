package model

// Paper is a document known to the backend.
type Paper struct {
	Filename string  `json:"filename"`
	PaperID  string  `json:"paper_id"`
	SizeMB   float64 `json:"size_mb"`
	Indexed  bool    `json:"indexed"`
}

// UploadResult reports a completed document upload.
type UploadResult struct {
	Filename  string `json:"filename"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	NumChunks int    `json:"num_chunks"`
}
