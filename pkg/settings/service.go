package settings

import "context"

type Service interface {
	Get(ctx context.Context) (Settings, error)
	// ToggleTheme flips between light and dark, persists the result
	// immediately and returns it.
	ToggleTheme(ctx context.Context) (Settings, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Get(ctx context.Context) (Settings, error) {
	return s.repo.Get(ctx)
}

func (s *ServiceImpl) ToggleTheme(ctx context.Context) (Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return Settings{}, err
	}

	if current.Theme == ThemeDark {
		current.Theme = ThemeLight
	} else {
		current.Theme = ThemeDark
	}
	if err := s.repo.Save(ctx, current); err != nil {
		return Settings{}, err
	}
	return current, nil
}
