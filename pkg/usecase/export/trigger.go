package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/adapter"
	"github.com/scholaragent/scholaragent/pkg/model"
)

var ErrNoConversation = goerr.New("no conversation to export")

// Trigger downloads generated conversation artifacts. Each format stands
// alone: a failed export of one format does not affect the others, and no
// state is shared beyond the conversation ID.
type Trigger struct {
	exporter adapter.Exporter
}

// New creates an export trigger
func New(exporter adapter.Exporter) *Trigger {
	return &Trigger{exporter: exporter}
}

// ExportAs fetches the artifact for one format and writes it under dir with
// its deterministic filename, returning the written path. Nothing is written
// when the fetch fails.
func (t *Trigger) ExportAs(ctx context.Context, format model.ExportFormat, id model.ConversationID, dir string) (string, error) {
	if id == "" {
		return "", goerr.Wrap(ErrNoConversation, "export requires a saved conversation")
	}
	if err := format.Validate(); err != nil {
		return "", err
	}

	data, err := t.exporter.Fetch(ctx, id, format)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch export",
			goerr.V("conversation_id", id), goerr.V("format", format))
	}

	path := filepath.Join(dir, format.ArtifactName(id))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", goerr.Wrap(err, "failed to write export file", goerr.V("path", path))
	}
	return path, nil
}
