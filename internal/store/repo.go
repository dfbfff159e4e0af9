package store

import (
	"context"
	"time"

	"github.com/mentorlabs/mentor/ent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProfileData is the serialized form of the learner profile.
type ProfileData struct {
	LearningStyle string  `json:"learning_style"`
	Confidence    float64 `json:"confidence"`
	Motivation    float64 `json:"motivation"`
	Pace          float64 `json:"pace"`
	Focus         float64 `json:"focus"`
	Language      string  `json:"language"`
}

// SnapshotData captures the persisted learner state at a point in time.
type SnapshotData struct {
	Version int          `json:"version"`
	Profile *ProfileData `json:"profile,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a practice session lifecycle event.
type SessionEventData struct {
	SessionID        string
	Action           string // "start" or "end"
	QuestionsServed  int
	CorrectAnswers   int
	ExperienceEarned int
	PeakLevel        int
	DurationSecs     int
}

// AnswerEventData captures a single graded answer.
type AnswerEventData struct {
	SessionID      string
	Level          int
	Prompt         string
	ExpectedAnswer string
	GivenAnswer    string
	Correct        bool
	TimedOut       bool
	TimeMs         int
	Streak         int
	Experience     int
}

// ChatEventData captures one tutor chat message.
type ChatEventData struct {
	SessionID string
	Role      string // "learner" or "mentor"
	Content   string
	Offline   bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is one logged LLM request as returned by queries.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageRecord aggregates request events for one purpose or model.
type LLMUsageRecord struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// SessionSummaryRecord is one completed session as reported by stats queries.
type SessionSummaryRecord struct {
	SessionID        string
	Timestamp        time.Time
	QuestionsServed  int
	CorrectAnswers   int
	ExperienceEarned int
	PeakLevel        int
	DurationSecs     int
}

// AccuracyRecord is the aggregate answer accuracy for one difficulty level.
type AccuracyRecord struct {
	Level    int
	Answered int
	Correct  int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records a graded answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendChatEvent records a tutor chat message.
	AppendChatEvent(ctx context.Context, data ChatEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// OverallAccuracy returns the fraction of all answers that were correct,
	// or 0 when no answers have been recorded.
	OverallAccuracy(ctx context.Context) (float64, error)

	// AccuracyByLevel returns per-level answer counts, ordered by level.
	AccuracyByLevel(ctx context.Context) ([]AccuracyRecord, error)

	// QuerySessionSummaries returns completed sessions, most recent first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryLLMEvents returns logged LLM requests, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageRecord, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageRecord, error)
}

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
