package model

// Answer is the backend's response to a single query. Each query is
// evaluated independently; the client never sends conversation history.
type Answer struct {
	Answer    string          `json:"answer"`
	Sources   []Source        `json:"sources"`
	Reasoning []ReasoningStep `json:"reasoning"`
}
