package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/model"
)

// Health is the interface for the backend health probe
type Health interface {
	Check(ctx context.Context) (*model.Health, error)
}

type healthClient struct {
	baseURL string
	client  *http.Client
}

// NewHealth creates a new health probe client
func NewHealth(baseURL string, timeout time.Duration) Health {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &healthClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (x *healthClient) Check(ctx context.Context) (*model.Health, error) {
	req, err := newRequest(ctx, http.MethodGet, x.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}

	var h model.Health
	if err := doJSON(ctx, x.client, req, &h); err != nil {
		return nil, goerr.Wrap(err, "health check failed")
	}
	return &h, nil
}
