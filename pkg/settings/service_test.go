package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetDefaultsToLightTheme(t *testing.T) {
	ctx := context.Background()
	service := NewService(&StubSettingsRepo{})

	current, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, current.Theme)
}

func TestService_ToggleThemeFlipsAndPersists(t *testing.T) {
	ctx := context.Background()
	repo := &StubSettingsRepo{}
	service := NewService(repo)

	toggled, err := service.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, toggled.Theme)
	require.NotNil(t, repo.Stored)
	assert.Equal(t, ThemeDark, repo.Stored.Theme)

	toggled, err = service.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, toggled.Theme)
	assert.Equal(t, ThemeLight, repo.Stored.Theme)
}
