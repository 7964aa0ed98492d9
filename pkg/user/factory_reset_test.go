package user

import (
	"context"
	"testing"

	"github.com/rooster-app/rooster/internal/event_bus"
	"github.com/rooster-app/rooster/internal/storage"
	"github.com/rooster-app/rooster/internal/test_utils"
	"github.com/rooster-app/rooster/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full factory-reset pass against real storage: profile and classes exist,
// clear removes everything and the schedule view follows.
func TestFactoryReset(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(test_utils.TestDB(t))
	bus := event_bus.NewEventBus()

	scheduleService := schedule.NewService(schedule.NewRepo(store), bus)
	userService := NewService(NewRepo(store), store, bus)

	require.NoError(t, userService.Set(ctx, Profile{Role: RoleStudent, Name: "Sam"}))
	for _, subject := range []string{"Math", "History"} {
		_, err := scheduleService.Create(ctx, schedule.Class{
			Subject: subject, Teacher: "T", Student: "S",
			Day: schedule.Monday, StartTime: "09:00", EndTime: "10:00", Color: "#FF6B6B",
		})
		require.NoError(t, err)
	}
	require.Len(t, scheduleService.ByDay(ctx, schedule.Monday), 2)

	require.NoError(t, userService.Clear(ctx))

	profile, err := userService.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
	assert.Empty(t, scheduleService.ByDay(ctx, schedule.Monday))

	classes, err := schedule.NewRepo(store).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, classes, "durable classes are gone after the wipe")
}
