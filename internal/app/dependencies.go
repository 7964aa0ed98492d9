package app

import (
	"database/sql"

	"github.com/rooster-app/rooster/internal/event_bus"
	"github.com/rooster-app/rooster/internal/storage"
	"github.com/rooster-app/rooster/internal/utils"
	"github.com/rooster-app/rooster/pkg/backup"
	"github.com/rooster-app/rooster/pkg/schedule"
	"github.com/rooster-app/rooster/pkg/settings"
	"github.com/rooster-app/rooster/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Store *storage.Store
	Bus   *event_bus.EventBus
	Clock utils.Clock

	ScheduleRepo    schedule.Repo
	ScheduleService schedule.Service
	ScheduleHandler *schedule.Handler

	UserRepo    user.Repo
	UserService user.Service
	UserHandler *user.Handler

	SettingsRepo    settings.Repo
	SettingsService settings.Service
	SettingsHandler *settings.Handler

	BackupService backup.Service
	BackupHandler *backup.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.Store = storage.NewStore(db)
	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.ScheduleRepo = schedule.NewRepo(deps.Store)
	deps.ScheduleService = schedule.NewService(deps.ScheduleRepo, deps.Bus)
	deps.ScheduleHandler = schedule.NewHandler(deps.ScheduleService, deps.Clock)

	deps.UserRepo = user.NewRepo(deps.Store)
	deps.UserService = user.NewService(deps.UserRepo, deps.Store, deps.Bus)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.SettingsRepo = settings.NewRepo(deps.Store)
	deps.SettingsService = settings.NewService(deps.SettingsRepo)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.BackupService = backup.NewService(deps.Store, deps.Bus)
	deps.BackupHandler = backup.NewHandler(deps.BackupService, deps.Clock)

	return deps
}
