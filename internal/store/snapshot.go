package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mentorlabs/mentor/ent"
	"github.com/mentorlabs/mentor/ent/snapshot"
)

// snapshotRepo stores learner profile snapshots through the ent client.
// Snapshots are periodic checkpoints of the profile; replaying events
// after the latest one rebuilds current state.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	payload, err := encodeSnapshotData(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	switch {
	case ent.IsNotFound(err):
		// A fresh database has no snapshots; the caller starts from
		// the default profile.
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return decodeSnapshot(row)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// The keep-th most recent snapshot marks the cutoff; everything at
	// or before its timestamp goes.
	cutoff, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(cutoff) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.TimestampLTE(cutoff[0].Timestamp)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// encodeSnapshotData round-trips the typed snapshot through JSON into
// the map form ent's JSON column wants.
func encodeSnapshotData(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSnapshot(row *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}
