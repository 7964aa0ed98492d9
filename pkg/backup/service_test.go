package backup

import (
	"context"
	"testing"

	"github.com/rooster-app/rooster/internal/event_bus"
	"github.com/rooster-app/rooster/internal/storage"
	"github.com/rooster-app/rooster/internal/test_utils"
	"github.com/rooster-app/rooster/pkg/schedule"
	"github.com/rooster-app/rooster/pkg/settings"
	"github.com/rooster-app/rooster/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) (context.Context, *storage.Store, *event_bus.EventBus, *ServiceImpl) {
	store := storage.NewStore(test_utils.TestDB(t))
	bus := event_bus.NewEventBus()
	return context.Background(), store, bus, NewService(store, bus)
}

func sampleSnapshot() Snapshot {
	return Snapshot{
		User: &user.Profile{Role: user.RoleStudent, Name: "Sam"},
		Classes: []schedule.Class{
			{
				Id: "c1", Subject: "Math", Teacher: "T", Student: "S",
				Day: schedule.Monday, StartTime: "09:00", EndTime: "10:00", Color: "#FF6B6B",
			},
			{
				Id: "c2", Subject: "History", Teacher: "T", Student: "S",
				Day: schedule.Friday, StartTime: "13:00", EndTime: "14:30", Room: "A1", Color: "#4ECDC4",
			},
		},
		Settings: settings.Settings{Theme: settings.ThemeDark},
	}
}

func TestService_ExportOnFreshStore(t *testing.T) {
	ctx, _, _, service := setupTestService(t)

	snapshot, err := service.Export(ctx)
	require.NoError(t, err)
	assert.Nil(t, snapshot.User)
	assert.Empty(t, snapshot.Classes)
	assert.Equal(t, settings.Default(), snapshot.Settings)
}

func TestService_ImportExportRoundTrip(t *testing.T) {
	ctx, _, _, service := setupTestService(t)
	original := sampleSnapshot()

	require.NoError(t, service.Import(ctx, original))

	exported, err := service.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, exported)

	// importing an export of the current state is idempotent
	require.NoError(t, service.Import(ctx, exported))
	again, err := service.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, again)
}

func TestService_ImportWithNilUserKeepsExistingProfile(t *testing.T) {
	ctx, store, _, service := setupTestService(t)
	existing := user.Profile{Role: user.RoleTeacher, Name: "Mr. Janssen"}
	require.NoError(t, user.NewRepo(store).Save(ctx, existing))

	snapshot := sampleSnapshot()
	snapshot.User = nil
	require.NoError(t, service.Import(ctx, snapshot))

	exported, err := service.Export(ctx)
	require.NoError(t, err)
	require.NotNil(t, exported.User)
	assert.Equal(t, existing, *exported.User)
	assert.Len(t, exported.Classes, 2)
}

func TestService_ImportOverwritesExistingData(t *testing.T) {
	ctx, _, _, service := setupTestService(t)
	require.NoError(t, service.Import(ctx, sampleSnapshot()))

	replacement := Snapshot{
		User: &user.Profile{Role: user.RoleTeacher, Name: "Mrs. Smit"},
		Classes: []schedule.Class{
			{
				Id: "only", Subject: "Art", Teacher: "T", Student: "S",
				Day: schedule.Wednesday, StartTime: "10:00", EndTime: "11:00", Color: "#DDA0DD",
			},
		},
		Settings: settings.Settings{Theme: settings.ThemeLight},
	}
	require.NoError(t, service.Import(ctx, replacement))

	exported, err := service.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, exported)
}

func TestService_ImportDropsInvalidClasses(t *testing.T) {
	ctx, _, _, service := setupTestService(t)

	snapshot := sampleSnapshot()
	snapshot.Classes = append(snapshot.Classes,
		schedule.Class{Id: "", Subject: "no id", Teacher: "T", Student: "S", Day: schedule.Monday, StartTime: "09:00", EndTime: "10:00"},
		schedule.Class{Id: "bad", Subject: "Gym", Teacher: "T", Student: "S", Day: "sunday", StartTime: "09:00", EndTime: "10:00"},
	)
	require.NoError(t, service.Import(ctx, snapshot))

	exported, err := service.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, exported.Classes, 2)
}

func TestService_ImportRefreshesScheduleView(t *testing.T) {
	ctx, store, bus, service := setupTestService(t)
	scheduleService := schedule.NewService(schedule.NewRepo(store), bus)
	require.NoError(t, scheduleService.Reload(ctx))
	require.Empty(t, scheduleService.All(ctx))

	require.NoError(t, service.Import(ctx, sampleSnapshot()))

	classes := scheduleService.All(ctx)
	require.Len(t, classes, 2)
	assert.Equal(t, "c1", classes[0].Id)
	assert.Len(t, scheduleService.ByDay(ctx, schedule.Friday), 1)
}
