package adapter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/scholaragent/scholaragent/pkg/adapter"
)

func TestQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Method, http.MethodPost)
		gt.Equal(t, r.URL.Path, "/query")

		var req map[string]string
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gt.Equal(t, req["query"], "What is LoRA?")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"answer": "Low-rank adaptation.",
			"sources": [{"paper_id": "p1", "paper_name": "LoRA", "page": 2, "score": 0.87, "content": "..."}],
			"reasoning": [{"step": "Query Analysis", "description": "Analyzing: 'What is LoRA?'"}]
		}`))
	}))
	defer srv.Close()

	ans, err := adapter.NewAnswer(srv.URL, 0).Query(context.Background(), "What is LoRA?")
	gt.NoError(t, err)
	gt.Equal(t, ans.Answer, "Low-rank adaptation.")
	gt.Equal(t, len(ans.Sources), 1)
	gt.Equal(t, ans.Sources[0].Score, 0.87)
	gt.Equal(t, len(ans.Reasoning), 1)
}

func TestQueryDefaultsAbsentFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer": "plain answer"}`))
	}))
	defer srv.Close()

	ans, err := adapter.NewAnswer(srv.URL, 0).Query(context.Background(), "hi")
	gt.NoError(t, err)
	gt.V(t, ans.Sources).NotNil()
	gt.Equal(t, len(ans.Sources), 0)
	gt.V(t, ans.Reasoning).NotNil()
	gt.Equal(t, len(ans.Reasoning), 0)
}

func TestQueryServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := adapter.NewAnswer(srv.URL, 0).Query(context.Background(), "hi")
	gt.Error(t, err).Required()
}
