package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rooster-app/rooster/internal/storage"
	log "github.com/sirupsen/logrus"
)

const settingsKey = "settings"

type Repo interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

// RepoImpl stores the settings as one JSON document under the "settings"
// record.
type RepoImpl struct {
	kv storage.KV
}

func NewRepo(kv storage.KV) *RepoImpl {
	return &RepoImpl{kv: kv}
}

func (r *RepoImpl) Get(ctx context.Context) (Settings, error) {
	data, found, err := r.kv.Get(ctx, settingsKey)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	if !found {
		return Default(), nil
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Errorf("stored settings record is corrupt, falling back to defaults: %v", err)
		return Default(), nil
	}
	if settings.Theme != ThemeLight && settings.Theme != ThemeDark {
		log.Warnf("stored settings carry unknown theme %q, falling back to defaults", settings.Theme)
		return Default(), nil
	}
	return settings, nil
}

func (r *RepoImpl) Save(ctx context.Context, settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := r.kv.Set(ctx, settingsKey, data); err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}
	return nil
}
