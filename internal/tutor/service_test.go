package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mentorlabs/mentor/internal/llm"
	"github.com/mentorlabs/mentor/internal/profile"
	"github.com/mentorlabs/mentor/internal/store"
)

// recordingEventRepo captures chat events; other EventRepo methods are
// unused by the tutor.
type recordingEventRepo struct {
	mu    sync.Mutex
	chats []store.ChatEventData
}

func (r *recordingEventRepo) AppendChatEvent(_ context.Context, data store.ChatEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chats = append(r.chats, data)
	return nil
}

func (r *recordingEventRepo) chatEvents() []store.ChatEventData {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]store.ChatEventData, len(r.chats))
	copy(out, r.chats)
	return out
}

func (r *recordingEventRepo) AppendSessionEvent(context.Context, store.SessionEventData) error {
	return nil
}
func (r *recordingEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error {
	return nil
}
func (r *recordingEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (r *recordingEventRepo) OverallAccuracy(context.Context) (float64, error) { return 0, nil }
func (r *recordingEventRepo) AccuracyByLevel(context.Context) ([]store.AccuracyRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageRecord, error) {
	return nil, nil
}
func (r *recordingEventRepo) LLMUsageByModel(context.Context) ([]store.LLMUsageRecord, error) {
	return nil, nil
}

func waitForReply(t *testing.T, svc *Service) *Message {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if reply, ok := svc.ConsumeReply(); ok {
			return reply
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for reply")
	return nil
}

func TestService_RepliesViaProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Great question! A derivative measures change. Try: what is the derivative of 3x?"`),
	})
	profiles := profile.NewStore(nil, nil)
	svc := NewService(mock, &recordingEventRepo{}, profiles, "sess-1")

	if !svc.Send(t.Context(), "What is a derivative?") {
		t.Fatal("Send returned false for non-empty message")
	}

	reply := waitForReply(t, svc)
	if reply.Role != RoleMentor {
		t.Errorf("Role = %q, want %q", reply.Role, RoleMentor)
	}
	if reply.Offline {
		t.Error("reply should not be marked offline")
	}
	if !strings.Contains(reply.Content, "derivative") {
		t.Errorf("unexpected reply: %q", reply.Content)
	}

	// The system prompt carries the learner profile.
	req := mock.Calls[0]
	if !strings.Contains(req.System, "mixed") {
		t.Errorf("system prompt missing learning style: %q", req.System)
	}
	if !strings.Contains(req.System, "en") {
		t.Errorf("system prompt missing language: %q", req.System)
	}
}

func TestService_OfflineModeUsesCannedReply(t *testing.T) {
	profiles := profile.NewStore(nil, nil)
	svc := NewService(nil, &recordingEventRepo{}, profiles, "sess-1")

	if !svc.Offline() {
		t.Error("session with nil provider should report offline")
	}

	svc.Send(t.Context(), "Teach me fractions")
	reply := waitForReply(t, svc)

	if !reply.Offline {
		t.Error("reply should be marked offline")
	}
	if reply.Content != offlineReply {
		t.Errorf("Content = %q, want canned reply", reply.Content)
	}
}

func TestService_ProviderErrorFallsBackToCannedReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	profiles := profile.NewStore(nil, nil)
	svc := NewService(mock, &recordingEventRepo{}, profiles, "sess-1")

	svc.Send(t.Context(), "hello")
	reply := waitForReply(t, svc)

	if !reply.Offline {
		t.Error("fallback reply should be marked offline")
	}
	if reply.Content != offlineReply {
		t.Errorf("Content = %q, want canned reply", reply.Content)
	}
}

func TestService_SendNudgesProfile(t *testing.T) {
	profiles := profile.NewStore(nil, nil)
	svc := NewService(nil, &recordingEventRepo{}, profiles, "sess-1")

	before := profiles.Current()
	svc.Send(t.Context(), "hi")
	waitForReply(t, svc)

	after := profiles.Current()
	if after.Motivation != before.Motivation+0.02 {
		t.Errorf("Motivation = %v, want %v", after.Motivation, before.Motivation+0.02)
	}
	if after.Focus != before.Focus+0.03 {
		t.Errorf("Focus = %v, want %v", after.Focus, before.Focus+0.03)
	}
}

func TestService_RecordsBothSidesOfExchange(t *testing.T) {
	repo := &recordingEventRepo{}
	profiles := profile.NewStore(nil, nil)
	svc := NewService(nil, repo, profiles, "sess-7")

	svc.Send(t.Context(), "what is 2+2?")
	waitForReply(t, svc)

	chats := repo.chatEvents()
	if len(chats) != 2 {
		t.Fatalf("recorded %d chat events, want 2", len(chats))
	}
	if chats[0].Role != "learner" || chats[0].Content != "what is 2+2?" {
		t.Errorf("first event = %+v, want learner message", chats[0])
	}
	if chats[1].Role != "mentor" || !chats[1].Offline {
		t.Errorf("second event = %+v, want offline mentor reply", chats[1])
	}
	if chats[0].SessionID != "sess-7" || chats[1].SessionID != "sess-7" {
		t.Error("chat events missing session ID")
	}
}

func TestService_IgnoresEmptyMessages(t *testing.T) {
	profiles := profile.NewStore(nil, nil)
	svc := NewService(nil, &recordingEventRepo{}, profiles, "sess-1")

	if svc.Send(t.Context(), "   ") {
		t.Error("Send should return false for blank input")
	}
	if _, ok := svc.ConsumeReply(); ok {
		t.Error("no reply should be pending after blank input")
	}
	if profiles.Current() != profile.Default() {
		t.Error("blank input must not nudge the profile")
	}
}

func TestService_HistoryAccumulates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"First reply"`)},
		llm.MockResponse{Content: json.RawMessage(`"Second reply"`)},
	)
	profiles := profile.NewStore(nil, nil)
	svc := NewService(mock, &recordingEventRepo{}, profiles, "sess-1")

	svc.Send(t.Context(), "first question")
	waitForReply(t, svc)
	svc.Send(t.Context(), "second question")
	waitForReply(t, svc)

	// The second request carries the full transcript so far.
	second := mock.Calls[1]
	if len(second.Messages) != 3 {
		t.Fatalf("second request has %d messages, want 3", len(second.Messages))
	}
	if second.Messages[1].Role != llm.RoleAssistant || second.Messages[1].Content != "First reply" {
		t.Errorf("history missing first reply: %+v", second.Messages[1])
	}
}
