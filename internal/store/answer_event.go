package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/mentorlabs/mentor/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLevel(data.Level).
		SetPrompt(data.Prompt).
		SetExpectedAnswer(data.ExpectedAnswer).
		SetGivenAnswer(data.GivenAnswer).
		SetCorrect(data.Correct).
		SetTimedOut(data.TimedOut).
		SetTimeMs(data.TimeMs).
		SetStreak(data.Streak).
		SetExperience(data.Experience).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) OverallAccuracy(ctx context.Context) (float64, error) {
	total, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count correct answers: %w", err)
	}
	return float64(correct) / float64(total), nil
}

func (r *eventRepo) AccuracyByLevel(ctx context.Context) ([]AccuracyRecord, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	byLevel := make(map[int]*AccuracyRecord)
	for _, e := range events {
		rec := byLevel[e.Level]
		if rec == nil {
			rec = &AccuracyRecord{Level: e.Level}
			byLevel[e.Level] = rec
		}
		rec.Answered++
		if e.Correct {
			rec.Correct++
		}
	}

	records := make([]AccuracyRecord, 0, len(byLevel))
	for _, rec := range byLevel {
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Level < records[j].Level })
	return records, nil
}
