package model

// Health is the backend's health report.
type Health struct {
	Status   string `json:"status"`
	VectorDB bool   `json:"vector_db"`
	LLM      bool   `json:"llm"`
}
