package adapter

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/model"
	"github.com/scholaragent/scholaragent/pkg/utils/logging"
)

// Exporter is the interface for fetching generated export artifacts
type Exporter interface {
	// Fetch retrieves the rendered artifact for one conversation and format
	Fetch(ctx context.Context, id model.ConversationID, format model.ExportFormat) ([]byte, error)
}

type exporterClient struct {
	baseURL string
	client  *http.Client
}

// NewExporter creates a new export client
func NewExporter(baseURL string, timeout time.Duration) Exporter {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &exporterClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (x *exporterClient) Fetch(ctx context.Context, id model.ConversationID, format model.ExportFormat) ([]byte, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	endpoint := x.baseURL + "/conversations/" + url.PathEscape(string(id)) + "/export/" + string(format)
	req, err := newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := x.client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "export request failed",
			goerr.V("conversation_id", id), goerr.V("format", format))
	}
	defer resp.Body.Close()

	logging.From(ctx).Debug("export request",
		"conversation_id", id, "format", format, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("export failed",
			goerr.V("conversation_id", id), goerr.V("format", format),
			goerr.V("status", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read export body", goerr.V("format", format))
	}
	return data, nil
}
