package adapter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/scholaragent/scholaragent/pkg/adapter"
	"github.com/scholaragent/scholaragent/pkg/model"
)

func TestFetchExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.URL.Path, "/conversations/conv_1/export/markdown")
		w.Header().Set("Content-Type", "text/markdown")
		_, _ = w.Write([]byte("# Conversation\n"))
	}))
	defer srv.Close()

	data, err := adapter.NewExporter(srv.URL, 0).Fetch(context.Background(), "conv_1", model.ExportMarkdown)
	gt.NoError(t, err)
	gt.S(t, string(data)).Contains("# Conversation")
}

func TestFetchExportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "render failed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := adapter.NewExporter(srv.URL, 0).Fetch(context.Background(), "conv_1", model.ExportPDF)
	gt.Error(t, err).Required()
}

func TestFetchExportInvalidFormat(t *testing.T) {
	_, err := adapter.NewExporter("http://localhost:1", 0).Fetch(context.Background(), "conv_1", "docx")
	gt.Error(t, err).Required()
}
