package profile

import (
	"context"
	"sync"
	"time"

	"github.com/mentorlabs/mentor/internal/store"
)

// snapshotVersion is the SnapshotData schema version this package writes.
const snapshotVersion = 1

// keepSnapshots is how many snapshots Prune retains after each save.
const keepSnapshots = 50

// Store owns the authoritative learner profile. All writes go through
// Apply, SetStyle, or SetLanguage; each one persists the result to the
// snapshot repo best-effort (a persistence failure never affects the
// in-memory profile).
type Store struct {
	mu       sync.Mutex
	profile  Profile
	snapRepo store.SnapshotRepo
}

// NewStore creates a Store seeded from snapshot data. A nil snapshot, or
// one without a profile record, yields the defaults. snapRepo may be nil
// (in-memory only, used by tests).
func NewStore(snap *store.SnapshotData, snapRepo store.SnapshotRepo) *Store {
	return &Store{
		profile:  fromSnapshot(snap),
		snapRepo: snapRepo,
	}
}

// Load reads the latest snapshot and builds a Store from it. Any read or
// parse failure falls back to the default profile; there is no retry and
// no partial merge of a corrupt record.
func Load(ctx context.Context, snapRepo store.SnapshotRepo) *Store {
	var data *store.SnapshotData
	if snapRepo != nil {
		if snap, err := snapRepo.Latest(ctx); err == nil && snap != nil {
			data = &snap.Data
		}
	}
	return NewStore(data, snapRepo)
}

// Current returns the profile as of the last mutation.
func (s *Store) Current() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Apply adds the signal's deltas, clamps every numeric trait to [0, 1],
// persists, and returns the resulting profile.
func (s *Store) Apply(sig Signal) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = s.profile.Apply(sig)
	s.persistLocked()
	return s.profile
}

// SetStyle overwrites the learning style unconditionally. No validation:
// callers are expected to pass one of the recognized tokens.
func (s *Store) SetStyle(style string) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.LearningStyle = style
	s.persistLocked()
	return s.profile
}

// SetLanguage overwrites the locale tag. The tag is opaque to this package.
func (s *Store) SetLanguage(tag string) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Language = tag
	s.persistLocked()
	return s.profile
}

// SnapshotData returns the serialized form of the current profile.
func (s *Store) SnapshotData() *store.ProfileData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toData(s.profile)
}

// persistLocked writes the current profile as a new snapshot. Failures are
// swallowed: persistence is best-effort and the in-memory profile is
// already updated. Callers must hold s.mu.
func (s *Store) persistLocked() {
	if s.snapRepo == nil {
		return
	}
	ctx := context.Background()
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version: snapshotVersion,
			Profile: toData(s.profile),
		},
	}
	if err := s.snapRepo.Save(ctx, snap); err != nil {
		return
	}
	_ = s.snapRepo.Prune(ctx, keepSnapshots)
}

// fromSnapshot restores a Profile from snapshot data, falling back to the
// defaults when the record is absent.
func fromSnapshot(snap *store.SnapshotData) Profile {
	if snap == nil || snap.Profile == nil {
		return Default()
	}
	d := snap.Profile
	p := Profile{
		LearningStyle: d.LearningStyle,
		Confidence:    clamp01(d.Confidence),
		Motivation:    clamp01(d.Motivation),
		Pace:          clamp01(d.Pace),
		Focus:         clamp01(d.Focus),
		Language:      d.Language,
	}
	if p.LearningStyle == "" {
		p.LearningStyle = StyleMixed
	}
	if p.Language == "" {
		p.Language = "en"
	}
	return p
}

func toData(p Profile) *store.ProfileData {
	return &store.ProfileData{
		LearningStyle: p.LearningStyle,
		Confidence:    p.Confidence,
		Motivation:    p.Motivation,
		Pace:          p.Pace,
		Focus:         p.Focus,
		Language:      p.Language,
	}
}
