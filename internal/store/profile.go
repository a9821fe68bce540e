package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/iqorum/ent"
	"github.com/abhisek/iqorum/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context) (*Profile, error) {
	rec, err := r.client.Profile.Query().
		Where(profile.KeyEQ(ProfileKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &Profile{}, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	p, err := profileFromMap(rec.Data)
	if err != nil {
		// Malformed persisted state resets to empty defaults rather
		// than propagating.
		fmt.Fprintf(os.Stderr, "warning: stored profile unreadable, resetting: %v\n", err)
		return &Profile{}, nil
	}
	return p, nil
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	dataMap, err := profileToMap(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	// Whole-record replacement: update the existing row or create it.
	n, err := r.client.Profile.Update().
		Where(profile.KeyEQ(ProfileKey)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Profile.Create().
		SetKey(ProfileKey).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Reset(ctx context.Context) error {
	_, err := r.client.Profile.Delete().
		Where(profile.KeyEQ(ProfileKey)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// profileToMap converts a Profile to map[string]any for ent JSON storage.
func profileToMap(p *Profile) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// profileFromMap converts the stored JSON map back to a Profile.
func profileFromMap(m map[string]any) (*Profile, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal stored data: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}
