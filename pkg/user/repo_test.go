package user

import (
	"context"
	"testing"

	"github.com/rooster-app/rooster/internal/storage"
	"github.com/rooster-app/rooster/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (context.Context, *storage.Store, *RepoImpl) {
	store := storage.NewStore(test_utils.TestDB(t))
	return context.Background(), store, NewRepo(store)
}

func TestRepoImpl_GetOnEmptyStore(t *testing.T) {
	ctx, _, repo := setupTestRepo(t)

	profile, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestRepoImpl_SaveAndGet(t *testing.T) {
	ctx, _, repo := setupTestRepo(t)

	require.NoError(t, repo.Save(ctx, Profile{Role: RoleTeacher, Name: "Mr. Janssen"}))

	profile, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, Profile{Role: RoleTeacher, Name: "Mr. Janssen"}, *profile)
}

func TestRepoImpl_GetTreatsCorruptRecordAsAbsent(t *testing.T) {
	ctx, store, repo := setupTestRepo(t)
	require.NoError(t, store.Set(ctx, "user", []byte(`{broken`)))

	profile, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestRepoImpl_GetTreatsInvalidShapeAsAbsent(t *testing.T) {
	ctx, store, repo := setupTestRepo(t)
	require.NoError(t, store.Set(ctx, "user", []byte(`{"role":"admin","name":""}`)))

	profile, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}
