package store

import (
	"context"
	"fmt"

	"github.com/abhisek/iqorum/ent"
	"github.com/abhisek/iqorum/ent/attemptevent"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetAssessment(data.Assessment).
		SetAction(data.Action).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		SetResultLabel(data.ResultLabel).
		SetScore(data.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) CompletedAttempts(ctx context.Context, assessment string, limit int) ([]Attempt, error) {
	q := r.client.AttemptEvent.Query().
		Where(
			attemptevent.AssessmentEQ(assessment),
			attemptevent.ActionEQ("complete"),
		).
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	recs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]Attempt, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Attempt{
			Sequence:  rec.Sequence,
			Timestamp: rec.Timestamp,
			AttemptEventData: AttemptEventData{
				SessionID:         rec.SessionID,
				Assessment:        rec.Assessment,
				Action:            rec.Action,
				QuestionsAnswered: rec.QuestionsAnswered,
				CorrectAnswers:    rec.CorrectAnswers,
				DurationSecs:      rec.DurationSecs,
				ResultLabel:       rec.ResultLabel,
				Score:             rec.Score,
			},
		})
	}
	return out, nil
}
