package store

import (
	"context"
	"fmt"

	"github.com/abhisek/iqorum/ent"
)

// feedbackRepo implements FeedbackRepo using the ent client.
type feedbackRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *feedbackRepo) AppendFeedback(ctx context.Context, message string) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.FeedbackEvent.Create().
		SetSequence(seq).
		SetMessage(message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append feedback event: %w", err)
	}
	return nil
}
