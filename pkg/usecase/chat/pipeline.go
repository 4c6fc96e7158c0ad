package chat

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/model"
	"github.com/scholaragent/scholaragent/pkg/utils/logging"
)

var (
	ErrEmptyMessage   = goerr.New("message is empty")
	ErrSubmitInFlight = goerr.New("a submission is already in flight")
)

// ErrorNotice is the assistant content shown when the answer fetch fails.
// It keeps the thread readable but is never persisted to the store.
const ErrorNotice = "Error: Failed to get response. Make sure backend is running."

// Submit runs one user turn end to end: optimistic local append, identity
// mint, best-effort persistence, answer fetch, assistant append. Only one
// submission may be in flight per session. A persistence failure never rolls
// back what the user already sees; an answer failure becomes the fixed
// ErrorNotice turn instead of surfacing as an error.
func (s *Session) Submit(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	userMsg := model.Message{Role: model.RoleUser, Content: text}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}
	s.inFlight = true
	gen := s.generation
	// The user turn shows up before any network round trip
	s.messages = append(s.messages, userMsg)
	s.mu.Unlock()

	// The lock is freed on every exit path
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	id := s.identityFor()
	s.persist(ctx, id, &userMsg)

	ans, err := s.answer.Query(ctx, text)
	if err != nil {
		logging.From(ctx).Warn("answer fetch failed",
			"conversation_id", id, "error", err)
		s.appendIfCurrent(gen, model.Message{Role: model.RoleAssistant, Content: ErrorNotice})
		return nil
	}

	assistantMsg := model.Message{
		Role:      model.RoleAssistant,
		Content:   ans.Answer,
		Sources:   ans.Sources,
		Reasoning: ans.Reasoning,
	}
	if !s.appendIfCurrent(gen, assistantMsg) {
		// Session was reset or reloaded while the answer was in flight
		return nil
	}
	s.persist(ctx, id, &assistantMsg)
	return nil
}

// persist saves one message to the store. Failures are logged and swallowed:
// the contract favors a responsive append-only log over strict consistency
// with the store.
func (s *Session) persist(ctx context.Context, id model.ConversationID, msg *model.Message) {
	if err := s.repo.AppendMessage(ctx, id, msg); err != nil {
		logging.From(ctx).Warn("failed to persist message",
			"conversation_id", id, "role", msg.Role, "error", err)
		return
	}

	if s.onRefresh != nil {
		s.onRefresh(ctx)
	}
}
