package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/rooster-app/rooster/internal/utils"
	"github.com/rooster-app/rooster/pkg/timeutils"
	log "github.com/sirupsen/logrus"
)

type ClassDTO struct {
	Id        string `json:"id,omitempty"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Student   string `json:"student"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Color     string `json:"color"`

	// Derived display fields, never read back on input.
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	DurationDisplay string `json:"durationDisplay,omitempty"`
	StartDisplay    string `json:"startDisplay,omitempty"`
	EndDisplay      string `json:"endDisplay,omitempty"`
}

type todayClassDTO struct {
	ClassDTO
	IsPast bool `json:"isPast"`
}

type conflictDTO struct {
	First  ClassDTO `json:"first"`
	Second ClassDTO `json:"second"`
}

type Handler struct {
	service Service
	clock   utils.Clock
}

func NewHandler(service Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

func classToDTO(class Class) ClassDTO {
	duration := timeutils.Duration(class.StartTime, class.EndTime)
	return ClassDTO{
		Id:              class.Id,
		Subject:         class.Subject,
		Teacher:         class.Teacher,
		Student:         class.Student,
		Day:             string(class.Day),
		StartTime:       class.StartTime,
		EndTime:         class.EndTime,
		Room:            class.Room,
		Notes:           class.Notes,
		Color:           class.Color,
		DurationMinutes: duration,
		DurationDisplay: timeutils.FormatDuration(duration),
		StartDisplay:    timeutils.FormatForDisplay(class.StartTime),
		EndDisplay:      timeutils.FormatForDisplay(class.EndTime),
	}
}

func dtoToClass(dto ClassDTO) Class {
	return Class{
		Id:        dto.Id,
		Subject:   dto.Subject,
		Teacher:   dto.Teacher,
		Student:   dto.Student,
		Day:       Day(dto.Day),
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Room:      dto.Room,
		Notes:     dto.Notes,
		Color:     dto.Color,
	}
}

// GetClasses returns the whole schedule, or a single day when the day query
// parameter is present. Order follows insertion order; display sorting is the
// client's concern.
func (handler *Handler) GetClasses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var classes []Class
	if dayParam := r.URL.Query().Get("day"); dayParam != "" {
		day := Day(dayParam)
		if !day.Valid() {
			http.Error(w, "unsupported day: "+dayParam, http.StatusBadRequest)
			return
		}
		classes = handler.service.ByDay(r.Context(), day)
	} else {
		classes = handler.service.All(r.Context())
	}

	dtos := make([]ClassDTO, 0, len(classes))
	for _, class := range classes {
		dtos = append(dtos, classToDTO(class))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) CreateClass(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new class")
	w.Header().Set("Content-Type", "application/json")

	var dto ClassDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), dtoToClass(dto))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(classToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	classId := mux.Vars(r)["classId"]

	var dto ClassDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == "" || dto.Id != classId {
		http.Error(w, "Invalid class id in request body", http.StatusBadRequest)
		return
	}

	if err := handler.service.Update(r.Context(), dtoToClass(dto)); err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrClassNotFound) {
			http.Error(w, "Class not found", http.StatusNotFound)
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

func (handler *Handler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	classId := mux.Vars(r)["classId"]

	if err := handler.service.Delete(r.Context(), classId); err != nil {
		if errors.Is(err, ErrClassNotFound) {
			http.Error(w, "Class not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetToday returns the current day tag and that day's classes sorted by start
// time, each annotated with whether it already passed.
func (handler *Handler) GetToday(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	today := timeutils.CurrentDayOfWeek(handler.clock)
	classes := []Class{}
	if day := Day(today); day.Valid() {
		classes = handler.service.ByDay(r.Context(), day)
	}
	sort.SliceStable(classes, func(i, j int) bool {
		return classes[i].StartTime < classes[j].StartTime
	})

	dtos := make([]todayClassDTO, 0, len(classes))
	for _, class := range classes {
		dtos = append(dtos, todayClassDTO{
			ClassDTO: classToDTO(class),
			IsPast:   timeutils.IsInPast(handler.clock, class.EndTime),
		})
	}

	response := struct {
		Day     string          `json:"day"`
		Classes []todayClassDTO `json:"classes"`
	}{Day: today, Classes: dtos}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetConflicts reports overlapping class pairs for the requested day.
func (handler *Handler) GetConflicts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	day := Day(r.URL.Query().Get("day"))
	if !day.Valid() {
		http.Error(w, "unsupported day: "+string(day), http.StatusBadRequest)
		return
	}

	conflicts := handler.service.ConflictsByDay(r.Context(), day)
	dtos := make([]conflictDTO, 0, len(conflicts))
	for _, conflict := range conflicts {
		dtos = append(dtos, conflictDTO{
			First:  classToDTO(conflict.First),
			Second: classToDTO(conflict.Second),
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetOptions returns the static vocabulary entry forms need: the supported
// days, the time-slot grid, and the subject color palette.
func (handler *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	response := struct {
		Days      []Day    `json:"days"`
		TimeSlots []string `json:"timeSlots"`
		Colors    []string `json:"colors"`
	}{Days: DaysOfWeek, TimeSlots: TimeSlots, Colors: SubjectColors}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
