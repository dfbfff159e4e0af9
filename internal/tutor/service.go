package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mentorlabs/mentor/internal/llm"
	"github.com/mentorlabs/mentor/internal/profile"
	"github.com/mentorlabs/mentor/internal/store"
)

const replyMaxTokens = 512

// Service runs one tutor chat session. Replies are generated
// asynchronously; the UI polls ConsumeReply. Only one reply is in-flight
// at a time.
type Service struct {
	provider llm.Provider // nil means offline mode
	events   store.EventRepo
	profiles *profile.Store

	sessionID string

	mu      sync.Mutex
	history []llm.Message
	pending *Message
	ready   bool
}

// NewService creates a chat session. A nil provider puts the session in
// offline mode, where every reply is the canned fallback.
func NewService(provider llm.Provider, events store.EventRepo, profiles *profile.Store, sessionID string) *Service {
	return &Service{
		provider:  provider,
		events:    events,
		profiles:  profiles,
		sessionID: sessionID,
	}
}

// Offline reports whether the session has no LLM provider.
func (s *Service) Offline() bool {
	return s.provider == nil
}

// Send records the learner's message, nudges the profile, and starts
// generating a reply. Empty messages (after trimming) are ignored and
// return false.
func (s *Service) Send(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	s.profiles.Apply(MessageSignal)
	s.appendEvent(ctx, RoleLearner, text, false)

	s.mu.Lock()
	s.history = append(s.history, llm.Message{Role: llm.RoleUser, Content: text})
	history := make([]llm.Message, len(s.history))
	copy(history, s.history)
	s.mu.Unlock()

	go func() {
		reply := s.generate(ctx, history)
		s.appendEvent(ctx, RoleMentor, reply.Content, reply.Offline)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.history = append(s.history, llm.Message{Role: llm.RoleAssistant, Content: reply.Content})
		s.pending = &reply
		s.ready = true
	}()

	return true
}

// ConsumeReply returns the pending mentor reply if one is ready.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeReply() (*Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	reply := s.pending
	s.pending = nil
	s.ready = false
	return reply, reply != nil
}

func (s *Service) generate(ctx context.Context, history []llm.Message) Message {
	if s.provider == nil {
		return Message{Role: RoleMentor, Content: offlineReply, Offline: true}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeTutorChat)

	req := llm.Request{
		System:    buildSystemPrompt(s.profiles.Current()),
		Messages:  history,
		MaxTokens: replyMaxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		// Degrade to the canned reply rather than surfacing an error
		// mid-conversation.
		return Message{Role: RoleMentor, Content: offlineReply, Offline: true}
	}

	return Message{Role: RoleMentor, Content: decodeReply(resp.Content)}
}

func (s *Service) appendEvent(ctx context.Context, role Role, content string, offline bool) {
	if s.events == nil {
		return
	}
	err := s.events.AppendChatEvent(ctx, store.ChatEventData{
		SessionID: s.sessionID,
		Role:      string(role),
		Content:   content,
		Offline:   offline,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log chat event: %v\n", err)
	}
}

// decodeReply unwraps plain-text responses that arrive as a JSON string.
func decodeReply(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}
