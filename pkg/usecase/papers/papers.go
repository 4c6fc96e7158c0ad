package papers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/adapter"
	"github.com/scholaragent/scholaragent/pkg/model"
)

var ErrNotPDF = goerr.New("only PDF files are allowed")

// UseCase wraps document management around the backend papers API
type UseCase struct {
	papers adapter.Papers
}

// New creates a papers usecase
func New(papers adapter.Papers) *UseCase {
	return &UseCase{papers: papers}
}

// Upload validates the file locally and sends it for indexing. The extension
// check happens before any network call. The returned result is the explicit
// signal callers use to unlock the chat screen.
func (u *UseCase) Upload(ctx context.Context, path string) (*model.UploadResult, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, goerr.Wrap(ErrNotPDF, "upload rejected", goerr.V("path", path))
	}

	result, err := u.papers.Upload(ctx, path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upload paper", goerr.V("path", path))
	}
	return result, nil
}

// List retrieves all documents known to the backend
func (u *UseCase) List(ctx context.Context) ([]model.Paper, error) {
	papers, err := u.papers.List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list papers")
	}
	return papers, nil
}

// Delete removes one document by filename
func (u *UseCase) Delete(ctx context.Context, filename string) error {
	if filename == "" {
		return goerr.New("filename is required")
	}
	if err := u.papers.Delete(ctx, filename); err != nil {
		return goerr.Wrap(err, "failed to delete paper", goerr.V("filename", filename))
	}
	return nil
}
