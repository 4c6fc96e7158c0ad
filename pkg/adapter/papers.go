package adapter

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/model"
)

// Papers is the interface for document upload and management
type Papers interface {
	// Upload sends one local file to the backend for indexing
	Upload(ctx context.Context, path string) (*model.UploadResult, error)

	// List retrieves all documents known to the backend
	List(ctx context.Context) ([]model.Paper, error)

	// Delete removes a document and its index entries by filename
	Delete(ctx context.Context, filename string) error
}

type papersClient struct {
	baseURL string
	client  *http.Client
}

// NewPapers creates a new document management client. Uploads reuse the
// answer-path timeout since indexing a large PDF is slow.
func NewPapers(baseURL string, timeout time.Duration) Papers {
	if timeout == 0 {
		timeout = queryTimeout
	}
	return &papersClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (x *papersClient) Upload(ctx context.Context, path string) (*model.UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}
	defer f.Close()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create form file")
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}
	if err := mw.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize form")
	}

	req, err := newRequest(ctx, http.MethodPost, x.baseURL+"/upload", buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var result model.UploadResult
	if err := doJSON(ctx, x.client, req, &result); err != nil {
		return nil, goerr.Wrap(err, "upload failed", goerr.V("path", path))
	}
	return &result, nil
}

type listPapersResponse struct {
	Papers []model.Paper `json:"papers"`
	Total  int           `json:"total"`
}

func (x *papersClient) List(ctx context.Context) ([]model.Paper, error) {
	req, err := newRequest(ctx, http.MethodGet, x.baseURL+"/papers", nil)
	if err != nil {
		return nil, err
	}

	var resp listPapersResponse
	if err := doJSON(ctx, x.client, req, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to list papers")
	}
	return resp.Papers, nil
}

func (x *papersClient) Delete(ctx context.Context, filename string) error {
	req, err := newRequest(ctx, http.MethodDelete, x.baseURL+"/papers/"+url.PathEscape(filename), nil)
	if err != nil {
		return err
	}

	if err := doJSON(ctx, x.client, req, nil); err != nil {
		return goerr.Wrap(err, "failed to delete paper", goerr.V("filename", filename))
	}
	return nil
}
