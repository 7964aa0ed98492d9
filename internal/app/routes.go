package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Schedule
	r.HandleFunc("/api/schedule", deps.ScheduleHandler.GetClasses).Methods("GET")
	r.HandleFunc("/api/schedule", deps.ScheduleHandler.CreateClass).Methods("POST")
	r.HandleFunc("/api/schedule/today", deps.ScheduleHandler.GetToday).Methods("GET")
	r.HandleFunc("/api/schedule/conflicts", deps.ScheduleHandler.GetConflicts).Queries("day", "{day}").Methods("GET")
	r.HandleFunc("/api/schedule/options", deps.ScheduleHandler.GetOptions).Methods("GET")
	r.HandleFunc("/api/schedule/{classId}", deps.ScheduleHandler.UpdateClass).Methods("PUT")
	r.HandleFunc("/api/schedule/{classId}", deps.ScheduleHandler.DeleteClass).Methods("DELETE")

	// User profile
	r.HandleFunc("/api/user", deps.UserHandler.GetProfile).Methods("GET")
	r.HandleFunc("/api/user", deps.UserHandler.SetProfile).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.ClearProfile).Methods("DELETE")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.GetSettings).Methods("GET")
	r.HandleFunc("/api/settings/theme", deps.SettingsHandler.ToggleTheme).Methods("PUT")

	// Backup
	r.HandleFunc("/api/backup/export", deps.BackupHandler.Export).Methods("GET")
	r.HandleFunc("/api/backup/import", deps.BackupHandler.Import).Methods("POST")
}
