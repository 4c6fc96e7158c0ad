package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/model"
	"github.com/scholaragent/scholaragent/pkg/utils/logging"
)

var ErrConversationNotFound = goerr.New("conversation not found")

const defaultTimeout = 30 * time.Second

// httpRepo implements Repository against the backend conversation API.
// Every operation is a single call; there is no client-side retry.
type httpRepo struct {
	baseURL string
	client  *http.Client
}

// New creates a Repository backed by the remote HTTP store. A zero timeout
// falls back to the default.
func New(baseURL string, timeout time.Duration) Repository {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &httpRepo{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type listResponse struct {
	Conversations []model.ConversationSummary `json:"conversations"`
	Total         int                         `json:"total"`
}

func (r *httpRepo) ListConversations(ctx context.Context) ([]model.ConversationSummary, error) {
	var resp listResponse
	status, err := r.do(ctx, http.MethodGet, "/conversations", nil, &resp)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, goerr.New("failed to list conversations", goerr.V("status", status))
	}
	return resp.Conversations, nil
}

func (r *httpRepo) GetConversation(ctx context.Context, id model.ConversationID) (*model.Conversation, error) {
	var conv model.Conversation
	status, err := r.do(ctx, http.MethodGet, "/conversations/"+url.PathEscape(string(id)), nil, &conv)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, goerr.Wrap(ErrConversationNotFound, "fetch failed", goerr.V("conversation_id", id))
	}
	if status < 200 || status >= 300 {
		return nil, goerr.New("failed to fetch conversation",
			goerr.V("conversation_id", id), goerr.V("status", status))
	}
	if conv.ID == "" {
		conv.ID = id
	}
	return &conv, nil
}

func (r *httpRepo) AppendMessage(ctx context.Context, id model.ConversationID, msg *model.Message) error {
	status, err := r.do(ctx, http.MethodPost, "/conversations/"+url.PathEscape(string(id))+"/messages", msg, nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return goerr.New("failed to append message",
			goerr.V("conversation_id", id), goerr.V("role", msg.Role), goerr.V("status", status))
	}
	return nil
}

func (r *httpRepo) DeleteConversation(ctx context.Context, id model.ConversationID) error {
	status, err := r.do(ctx, http.MethodDelete, "/conversations/"+url.PathEscape(string(id)), nil, nil)
	if err != nil {
		return err
	}
	// Deleting a conversation that is already gone counts as success
	if status == http.StatusNotFound {
		return nil
	}
	if status < 200 || status >= 300 {
		return goerr.New("failed to delete conversation",
			goerr.V("conversation_id", id), goerr.V("status", status))
	}
	return nil
}

// do issues one request and decodes a 2xx JSON body into out when given.
// Status interpretation is left to the caller.
func (r *httpRepo) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, goerr.Wrap(err, "failed to marshal request body", goerr.V("path", path))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to build request", goerr.V("path", path))
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, goerr.Wrap(err, "store request failed",
			goerr.V("method", method), goerr.V("path", path))
	}
	defer resp.Body.Close()

	logging.From(ctx).Debug("store request",
		"method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, goerr.Wrap(err, "failed to decode response", goerr.V("path", path))
		}
	}
	return resp.StatusCode, nil
}
