package backup

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rooster-app/rooster/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
	clock   utils.Clock
}

func NewHandler(service Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

// Export serves the full snapshot as a pretty-printed JSON attachment named
// after the current date, e.g. rooster-schedule-2026-08-31.json.
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	log.Debug("Exporting schedule snapshot")

	snapshot, err := handler.service.Export(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("rooster-schedule-%s.json", handler.clock.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Errorf("failed to write export response: %v", err)
	}
}

func (handler *Handler) Import(w http.ResponseWriter, r *http.Request) {
	log.Debug("Importing schedule snapshot")
	w.Header().Set("Content-Type", "application/json")

	var snapshot Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.Import(r.Context(), snapshot); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	response := struct {
		Imported int `json:"importedClasses"`
	}{Imported: len(snapshot.Classes)}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
