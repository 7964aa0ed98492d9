package schedule

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

func testClass(id string) Class {
	return Class{
		Id:        id,
		Subject:   "Math",
		Teacher:   "Mr. Janssen",
		Student:   "Sam",
		Day:       Monday,
		StartTime: "09:00",
		EndTime:   "10:00",
		Room:      "B12",
		Color:     "#FF6B6B",
	}
}

func TestRepoImpl_FindAllOnEmptyStore(t *testing.T) {
	ctx, _, repo := setupTestRepo(t)

	classes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestRepoImpl_StoreAllRoundTrip(t *testing.T) {
	ctx, _, repo := setupTestRepo(t)
	stored := []Class{testClass("one"), testClass("two")}
	stored[1].Day = Friday
	stored[1].Notes = "bring calculator"

	require.NoError(t, repo.StoreAll(ctx, stored))

	classes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, classes)
}

func TestRepoImpl_StoreAllOverwritesWholeCollection(t *testing.T) {
	ctx, _, repo := setupTestRepo(t)
	require.NoError(t, repo.StoreAll(ctx, []Class{testClass("one"), testClass("two")}))

	require.NoError(t, repo.StoreAll(ctx, []Class{testClass("three")}))

	classes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "three", classes[0].Id)
}

func TestRepoImpl_FindAllFallsBackOnCorruptRecord(t *testing.T) {
	ctx, store, repo := setupTestRepo(t)
	require.NoError(t, store.Set(ctx, "classes", []byte(`{not json`)))

	classes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestRepoImpl_FindAllDropsMalformedEntries(t *testing.T) {
	ctx, store, repo := setupTestRepo(t)
	// one valid entry, one with a weekend day, one missing required fields
	require.NoError(t, store.Set(ctx, "classes", []byte(`[
		{"id":"ok","subject":"Math","teacher":"T","student":"S","day":"monday","startTime":"09:00","endTime":"10:00","color":"#FF6B6B"},
		{"id":"bad-day","subject":"Math","teacher":"T","student":"S","day":"saturday","startTime":"09:00","endTime":"10:00","color":"#FF6B6B"},
		{"id":"bad-shape","subject":"","day":"monday"}
	]`)))

	classes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "ok", classes[0].Id)
}
