package store

import (
	"context"
	"fmt"

	"github.com/mentorlabs/mentor/ent"
	"github.com/mentorlabs/mentor/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetExperienceEarned(data.ExperienceEarned).
		SetPeakLevel(data.PeakLevel).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, len(events))
	for i, e := range events {
		records[i] = SessionSummaryRecord{
			SessionID:        e.SessionID,
			Timestamp:        e.Timestamp,
			QuestionsServed:  e.QuestionsServed,
			CorrectAnswers:   e.CorrectAnswers,
			ExperienceEarned: e.ExperienceEarned,
			PeakLevel:        e.PeakLevel,
			DurationSecs:     e.DurationSecs,
		}
	}
	return records, nil
}
