package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot on empty store")
	}

	// Save one and read it back.
	in := &Snapshot{
		Sequence:  7,
		Timestamp: time.Now(),
		Data: SnapshotData{
			Version: 1,
			Profile: &ProfileData{
				LearningStyle: "visual",
				Confidence:    0.75,
				Motivation:    0.6,
				Pace:          0.5,
				Focus:         0.8,
				Language:      "en",
			},
		},
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if out == nil {
		t.Fatal("expected a snapshot")
	}
	if out.Sequence != 7 {
		t.Errorf("Sequence = %d, want 7", out.Sequence)
	}
	if out.Data.Profile == nil {
		t.Fatal("expected profile data in snapshot")
	}
	if out.Data.Profile.LearningStyle != "visual" {
		t.Errorf("LearningStyle = %q, want %q", out.Data.Profile.LearningStyle, "visual")
	}
	if out.Data.Profile.Confidence != 0.75 {
		t.Errorf("Confidence = %v, want 0.75", out.Data.Profile.Confidence)
	}
}

func TestSnapshotLatestWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now()
	for i, conf := range []float64{0.1, 0.2, 0.3} {
		snap := &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1, Profile: &ProfileData{Confidence: conf}},
		}
		if err := repo.Save(ctx, snap); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	out, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if out.Data.Profile.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3 (most recent)", out.Data.Profile.Confidence)
	}
}

func TestSequenceOrderingAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatalf("AppendSessionEvent: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:      "s1",
		Level:          1,
		Prompt:         "What is 7 + 5?",
		ExpectedAnswer: "12",
		GivenAnswer:    "12",
		Correct:        true,
		TimeMs:         4200,
	}); err != nil {
		t.Fatalf("AppendAnswerEvent: %v", err)
	}
	if err := repo.AppendChatEvent(ctx, ChatEventData{SessionID: "c1", Role: "learner", Content: "hi"}); err != nil {
		t.Fatalf("AppendChatEvent: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	ae, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer event: %v", err)
	}
	ce, err := s.Client().ChatEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query chat event: %v", err)
	}

	if !(se.Sequence < ae.Sequence && ae.Sequence < ce.Sequence) {
		t.Errorf("sequences not strictly increasing across types: %d, %d, %d",
			se.Sequence, ae.Sequence, ce.Sequence)
	}
}

func TestOverallAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, err := repo.OverallAccuracy(ctx)
	if err != nil {
		t.Fatalf("OverallAccuracy on empty store: %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %v, want 0 on empty store", acc)
	}

	for _, correct := range []bool{true, true, false, true} {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:      "s1",
			Level:          2,
			Prompt:         "What is 15% of 200?",
			ExpectedAnswer: "30",
			GivenAnswer:    "30",
			Correct:        correct,
			TimeMs:         1000,
		})
		if err != nil {
			t.Fatalf("AppendAnswerEvent: %v", err)
		}
	}

	acc, err = repo.OverallAccuracy(ctx)
	if err != nil {
		t.Fatalf("OverallAccuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestQuerySessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// "start" events must not appear in summaries.
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "a", Action: "start"}); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"a", "b"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:        id,
			Action:           "end",
			QuestionsServed:  5,
			CorrectAnswers:   4,
			ExperienceEarned: 58,
			PeakLevel:        2,
			DurationSecs:     90,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	records, err := repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("QuerySessionSummaries: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Most recent first.
	if records[0].SessionID != "b" {
		t.Errorf("first record = %q, want %q", records[0].SessionID, "b")
	}
	if records[0].ExperienceEarned != 58 {
		t.Errorf("ExperienceEarned = %d, want 58", records[0].ExperienceEarned)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	repo := s.EventRepo()
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SnapshotRepo().Save(ctx, &Snapshot{Timestamp: time.Now(), Data: SnapshotData{Version: 1}}); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	n, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("session events after reset = %d, want 0", n)
	}
	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if snap != nil {
		t.Error("expected no snapshot after reset")
	}

	// Sequence restarts at 1.
	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if seq != 1 {
		t.Errorf("sequence after reset = %d, want 1", seq)
	}
}
