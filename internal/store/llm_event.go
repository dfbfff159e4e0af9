package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/mentorlabs/mentor/ent"
	"github.com/mentorlabs/mentor/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	records := make([]LLMEventRecord, len(events))
	for i, e := range events {
		records[i] = LLMEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		}
	}
	return records, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageRecord, error) {
	return r.aggregateLLMUsage(ctx, func(e *ent.LLMRequestEvent) string { return e.Purpose }, true)
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsageRecord, error) {
	return r.aggregateLLMUsage(ctx, func(e *ent.LLMRequestEvent) string { return e.Model }, false)
}

// aggregateLLMUsage groups request events by the given key. The event
// volume for a single learner is small, so grouping in memory keeps the
// query portable.
func (r *eventRepo) aggregateLLMUsage(ctx context.Context, keyOf func(*ent.LLMRequestEvent) string, byPurpose bool) ([]LLMUsageRecord, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	grouped := make(map[string]*LLMUsageRecord)
	latency := make(map[string]int64)
	for _, e := range events {
		key := keyOf(e)
		rec := grouped[key]
		if rec == nil {
			rec = &LLMUsageRecord{}
			if byPurpose {
				rec.Purpose = key
			} else {
				rec.Model = key
			}
			grouped[key] = rec
		}
		rec.Calls++
		rec.InputTokens += e.InputTokens
		rec.OutputTokens += e.OutputTokens
		latency[key] += e.LatencyMs
	}

	records := make([]LLMUsageRecord, 0, len(grouped))
	for key, rec := range grouped {
		rec.AvgLatencyMs = latency[key] / int64(rec.Calls)
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if byPurpose {
			return records[i].Purpose < records[j].Purpose
		}
		return records[i].Model < records[j].Model
	})
	return records, nil
}
