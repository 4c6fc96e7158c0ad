package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/model"
)

// Answer is the interface for the remote answer engine
type Answer interface {
	// Query evaluates one raw query independently of any conversation
	// history and returns the answer with its citations and trace
	Query(ctx context.Context, query string) (*model.Answer, error)
}

// Agent queries can run for a while; give them more room than the default.
const queryTimeout = 5 * time.Minute

type answerClient struct {
	baseURL string
	client  *http.Client
}

// NewAnswer creates a new answer engine client
func NewAnswer(baseURL string, timeout time.Duration) Answer {
	if timeout == 0 {
		timeout = queryTimeout
	}
	return &answerClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type queryRequest struct {
	Query string `json:"query"`
}

func (x *answerClient) Query(ctx context.Context, query string) (*model.Answer, error) {
	body, err := json.Marshal(queryRequest{Query: query})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal query")
	}

	req, err := newRequest(ctx, http.MethodPost, x.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var ans model.Answer
	if err := doJSON(ctx, x.client, req, &ans); err != nil {
		return nil, goerr.Wrap(err, "query failed")
	}

	// Absent sources/reasoning are normalized here so nothing downstream
	// deals with nil payloads
	if ans.Sources == nil {
		ans.Sources = []model.Source{}
	}
	if ans.Reasoning == nil {
		ans.Reasoning = []model.ReasoningStep{}
	}
	return &ans, nil
}
