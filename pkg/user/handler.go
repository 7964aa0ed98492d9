package user

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type ProfileDTO struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetProfile returns the stored profile, or 404 before onboarding so clients
// can route to the welcome screen.
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	profile, err := handler.service.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "No user profile", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ProfileDTO{Role: string(profile.Role), Name: profile.Name}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) SetProfile(w http.ResponseWriter, r *http.Request) {
	log.Debug("Storing user profile")
	w.Header().Set("Content-Type", "application/json")

	var dto ProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile := Profile{Role: Role(dto.Role), Name: dto.Name}
	if err := handler.service.Set(r.Context(), profile); err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// ClearProfile performs the factory reset: profile, classes and settings are
// all removed together.
func (handler *Handler) ClearProfile(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Clear(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
