package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/utils/logging"
)

const defaultTimeout = 30 * time.Second

func newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("url", url))
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

// doJSON sends one request and decodes a 2xx JSON response into out.
// Any non-2xx status is an error; retries are the user's job.
func doJSON(ctx context.Context, client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed",
			goerr.V("method", req.Method), goerr.V("url", req.URL.String()))
	}
	defer resp.Body.Close()

	logging.From(ctx).Debug("backend request",
		"method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return goerr.New("unexpected status",
			goerr.V("method", req.Method), goerr.V("url", req.URL.String()),
			goerr.V("status", resp.StatusCode))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return goerr.Wrap(err, "failed to decode response", goerr.V("url", req.URL.String()))
		}
	}
	return nil
}
