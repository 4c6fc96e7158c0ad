package chat

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/adapter"
	"github.com/scholaragent/scholaragent/pkg/model"
	"github.com/scholaragent/scholaragent/pkg/repository"
)

// Session owns the client-local mirror of the active conversation: its
// identity and the in-memory message log. All mutation goes through the
// controller methods and the submit pipeline; renderers only read copies.
// The remote store is the durable system of record and may briefly lag
// behind what the session shows.
type Session struct {
	repo      repository.Repository
	answer    adapter.Answer
	onRefresh func(ctx context.Context)
	now       func() time.Time

	mu             sync.Mutex
	conversationID model.ConversationID
	messages       []model.Message
	generation     uint64
	inFlight       bool
}

// NewInput contains parameters for creating a session
type NewInput struct {
	Repo   repository.Repository
	Answer adapter.Answer

	// OnRefresh is invoked after each successful message persistence so the
	// conversation list can update its message counts. Best-effort only.
	OnRefresh func(ctx context.Context)

	// Now overrides the clock used for identity minting (tests)
	Now func() time.Time
}

// New creates an empty session
func New(input NewInput) *Session {
	s := &Session{
		repo:      input.Repo,
		answer:    input.Answer,
		onRefresh: input.OnRefresh,
		now:       input.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Reset discards the session and returns to the empty "new chat" state.
// Safe to call at any time; a response still in flight for the previous
// state is discarded when it arrives instead of being applied.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversationID = ""
	s.messages = nil
	s.generation++
}

// ID returns the active conversation ID. Empty means unsaved/new: a session
// only acquires an identity once its first message is persisted.
func (s *Session) ID() model.ConversationID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversationID
}

// Messages returns a copy of the in-memory message log in turn order.
func (s *Session) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Message(nil), s.messages...)
}

// Load replaces the session wholesale with a stored conversation. When the
// fetch fails the session keeps its previous identity and log untouched.
func (s *Session) Load(ctx context.Context, id model.ConversationID) error {
	conv, err := s.repo.GetConversation(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to load conversation", goerr.V("conversation_id", id))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversationID = id
	s.messages = append([]model.Message(nil), conv.Messages...)
	s.generation++
	return nil
}

// DeleteActive asks the store to delete a conversation. When the deleted
// conversation is the active one the session resets to empty; deleting any
// other conversation leaves the session alone.
func (s *Session) DeleteActive(ctx context.Context, id model.ConversationID) error {
	if err := s.repo.DeleteConversation(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete conversation", goerr.V("conversation_id", id))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conversationID == id {
		s.conversationID = ""
		s.messages = nil
		s.generation++
	}
	return nil
}

// identityFor returns the conversation identity, minting a time-based one
// the first time a message is about to be persisted. The identity is stable
// for the rest of the session; a session abandoned before its first message
// never acquires one.
func (s *Session) identityFor() model.ConversationID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conversationID == "" {
		s.conversationID = model.NewConversationID(s.now())
	}
	return s.conversationID
}

// appendIfCurrent appends only when the session has not been reset or
// reloaded since the submission started. A stale response for a previous
// session state is dropped, never applied to the current one.
func (s *Session) appendIfCurrent(gen uint64, msg model.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return false
	}
	s.messages = append(s.messages, msg)
	return true
}
