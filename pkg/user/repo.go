package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rooster-app/rooster/internal/storage"
	log "github.com/sirupsen/logrus"
)

const userKey = "user"

type Repo interface {
	// Get returns nil when no profile is stored.
	Get(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, profile Profile) error
}

// RepoImpl stores the profile as one JSON document under the "user" record.
type RepoImpl struct {
	kv storage.KV
}

func NewRepo(kv storage.KV) *RepoImpl {
	return &RepoImpl{kv: kv}
}

func (r *RepoImpl) Get(ctx context.Context) (*Profile, error) {
	data, found, err := r.kv.Get(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read user profile: %w", err)
	}
	if !found {
		return nil, nil
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		// Treat a corrupt profile record like a fresh install rather than failing.
		log.Errorf("stored user record is corrupt, treating as absent: %v", err)
		return nil, nil
	}
	if !profile.Role.Valid() || profile.Name == "" {
		log.Errorf("stored user record has invalid shape, treating as absent")
		return nil, nil
	}
	return &profile, nil
}

func (r *RepoImpl) Save(ctx context.Context, profile Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}
	if err := r.kv.Set(ctx, userKey, data); err != nil {
		return fmt.Errorf("failed to store user profile: %w", err)
	}
	return nil
}
