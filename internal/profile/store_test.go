package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/mentorlabs/mentor/internal/store"
)

// fakeSnapRepo is an in-memory SnapshotRepo for exercising the persistence
// contract without a database.
type fakeSnapRepo struct {
	saved   []*store.Snapshot
	latest  *store.Snapshot
	failAll bool
}

func (f *fakeSnapRepo) Save(_ context.Context, snap *store.Snapshot) error {
	if f.failAll {
		return errors.New("disk full")
	}
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if f.failAll {
		return nil, errors.New("read error")
	}
	return f.latest, nil
}

func (f *fakeSnapRepo) Prune(_ context.Context, _ int) error {
	if f.failAll {
		return errors.New("prune error")
	}
	return nil
}

func TestLoadNoPriorState(t *testing.T) {
	s := Load(context.Background(), &fakeSnapRepo{})
	if s.Current() != Default() {
		t.Errorf("profile = %+v, want defaults", s.Current())
	}
}

func TestLoadCorruptStateFallsBackToDefaults(t *testing.T) {
	s := Load(context.Background(), &fakeSnapRepo{failAll: true})
	if s.Current() != Default() {
		t.Errorf("profile = %+v, want defaults on read failure", s.Current())
	}
}

func TestLoadRestoresPersistedProfile(t *testing.T) {
	repo := &fakeSnapRepo{
		latest: &store.Snapshot{
			Data: store.SnapshotData{
				Version: snapshotVersion,
				Profile: &store.ProfileData{
					LearningStyle: StyleAudio,
					Confidence:    0.9,
					Motivation:    0.1,
					Pace:          0.7,
					Focus:         0.4,
					Language:      "fr",
				},
			},
		},
	}

	p := Load(context.Background(), repo).Current()
	if p.LearningStyle != StyleAudio {
		t.Errorf("LearningStyle = %q, want %q", p.LearningStyle, StyleAudio)
	}
	if p.Confidence != 0.9 || p.Motivation != 0.1 || p.Pace != 0.7 || p.Focus != 0.4 {
		t.Errorf("traits not restored: %+v", p)
	}
	if p.Language != "fr" {
		t.Errorf("Language = %q, want %q", p.Language, "fr")
	}
}

func TestLoadClampsOutOfRangeRecord(t *testing.T) {
	// A record written by a buggy or tampered client must not break the
	// invariant on restore.
	repo := &fakeSnapRepo{
		latest: &store.Snapshot{
			Data: store.SnapshotData{
				Version: snapshotVersion,
				Profile: &store.ProfileData{Confidence: 3.5, Motivation: -1},
			},
		},
	}

	p := Load(context.Background(), repo).Current()
	if p.Confidence != 1 {
		t.Errorf("Confidence = %v, want 1 (clamped)", p.Confidence)
	}
	if p.Motivation != 0 {
		t.Errorf("Motivation = %v, want 0 (clamped)", p.Motivation)
	}
	if p.LearningStyle != StyleMixed {
		t.Errorf("empty LearningStyle not defaulted: %q", p.LearningStyle)
	}
	if p.Language != "en" {
		t.Errorf("empty Language not defaulted: %q", p.Language)
	}
}

func TestApplyPersistsEveryChange(t *testing.T) {
	repo := &fakeSnapRepo{}
	s := NewStore(nil, repo)

	s.Apply(Signal{Confidence: 0.04})
	s.Apply(Signal{Motivation: -0.01})
	s.SetStyle(StyleVisual)
	s.SetLanguage("es")

	if len(repo.saved) != 4 {
		t.Fatalf("saved %d snapshots, want 4", len(repo.saved))
	}
	last := repo.saved[3].Data.Profile
	if last == nil {
		t.Fatal("snapshot has no profile data")
	}
	if last.LearningStyle != StyleVisual {
		t.Errorf("persisted LearningStyle = %q, want %q", last.LearningStyle, StyleVisual)
	}
	if last.Language != "es" {
		t.Errorf("persisted Language = %q, want %q", last.Language, "es")
	}
}

func TestPersistFailureDoesNotAffectResult(t *testing.T) {
	s := NewStore(nil, &fakeSnapRepo{failAll: true})

	p := s.Apply(Signal{Confidence: 0.04})
	if p.Confidence != 0.54 {
		t.Errorf("Confidence = %v, want 0.54 despite persistence failure", p.Confidence)
	}
	if s.Current().Confidence != 0.54 {
		t.Errorf("in-memory profile lost the update")
	}
}

func TestSetStyleAcceptsAnyToken(t *testing.T) {
	s := NewStore(nil, nil)
	p := s.SetStyle("holographic")
	if p.LearningStyle != "holographic" {
		t.Errorf("LearningStyle = %q, want unvalidated passthrough", p.LearningStyle)
	}
}

func TestNilRepoIsInMemoryOnly(t *testing.T) {
	s := NewStore(nil, nil)
	p := s.Apply(Signal{Focus: 0.03})
	if p.Focus != 0.63 {
		t.Errorf("Focus = %v, want 0.63", p.Focus)
	}
}
