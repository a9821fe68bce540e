package store

import (
	"context"
	"fmt"

	"github.com/abhisek/iqorum/ent"
	"github.com/abhisek/iqorum/ent/llmrequestevent"
)

// llmEventRepo implements LLMEventRepo using the ent client.
type llmEventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *llmEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *llmEventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	recs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]LLMRequestEvent, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recordToLLMEvent(rec))
	}
	return out, nil
}

func (r *llmEventRepo) LLMRequestByID(ctx context.Context, id int) (*LLMRequestEvent, error) {
	rec, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	e := recordToLLMEvent(rec)
	return &e, nil
}

func recordToLLMEvent(rec *ent.LLMRequestEvent) LLMRequestEvent {
	return LLMRequestEvent{
		ID:        rec.ID,
		Sequence:  rec.Sequence,
		Timestamp: rec.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     rec.Provider,
			Model:        rec.Model,
			Purpose:      rec.Purpose,
			InputTokens:  rec.InputTokens,
			OutputTokens: rec.OutputTokens,
			LatencyMs:    rec.LatencyMs,
			Success:      rec.Success,
			ErrorMessage: rec.ErrorMessage,
			RequestBody:  rec.RequestBody,
			ResponseBody: rec.ResponseBody,
		},
	}
}
