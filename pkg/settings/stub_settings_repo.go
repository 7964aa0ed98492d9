package settings

import "context"

// StubSettingsRepo is an in-memory Repo for service tests.
type StubSettingsRepo struct {
	Stored *Settings
}

func (s *StubSettingsRepo) Get(ctx context.Context) (Settings, error) {
	if s.Stored == nil {
		return Default(), nil
	}
	return *s.Stored, nil
}

func (s *StubSettingsRepo) Save(ctx context.Context, settings Settings) error {
	s.Stored = &settings
	return nil
}
