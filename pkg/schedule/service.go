package schedule

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rooster-app/rooster/internal/event_bus"
	"github.com/rooster-app/rooster/pkg/timeutils"
	log "github.com/sirupsen/logrus"
)

// Validate checks the class invariants: the three display names must be
// non-empty after trimming, the day must be a supported weekday, and the time
// range must be a valid "HH:MM" pair with start strictly before end.
func Validate(class Class) error {
	if strings.TrimSpace(class.Subject) == "" {
		return fmt.Errorf("%w: subject must not be empty", ErrValidation)
	}
	if strings.TrimSpace(class.Teacher) == "" {
		return fmt.Errorf("%w: teacher must not be empty", ErrValidation)
	}
	if strings.TrimSpace(class.Student) == "" {
		return fmt.Errorf("%w: student must not be empty", ErrValidation)
	}
	if !class.Day.Valid() {
		return fmt.Errorf("%w: unsupported day %q", ErrValidation, class.Day)
	}
	if !validTime(class.StartTime) || !validTime(class.EndTime) {
		return fmt.Errorf("%w: times must be in HH:MM format", ErrValidation)
	}
	if class.StartTime >= class.EndTime {
		return fmt.Errorf("%w: start time %s must be before end time %s", ErrValidation, class.StartTime, class.EndTime)
	}
	return nil
}

func validTime(t string) bool {
	if len(t) != 5 || t[2] != ':' {
		return false
	}
	for i, c := range t {
		if i == 2 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return timeutils.ToMinutes(t) < 24*60 && t[3] < '6'
}

type Service interface {
	// Reload replaces the in-memory view with the stored collection. Called
	// once at startup; a failure leaves the view empty and is reported to the
	// caller, not fatal.
	Reload(ctx context.Context) error
	All(ctx context.Context) []Class
	ByDay(ctx context.Context, day Day) []Class
	Create(ctx context.Context, class Class) (Class, error)
	Update(ctx context.Context, class Class) error
	Delete(ctx context.Context, id string) error
	// ConflictsByDay reports every pair of classes on the given day whose
	// time ranges overlap.
	ConflictsByDay(ctx context.Context, day Day) []Conflict
}

// ServiceImpl holds the authoritative in-memory view over the stored class
// collection. Every mutation is written through to the repo before the view
// changes; a failed write leaves the view at its pre-write state. The mutex
// linearizes the collection-level read-modify-write so two concurrent
// mutations cannot drop each other's entries.
type ServiceImpl struct {
	repo Repo

	mu      sync.RWMutex
	classes []Class
}

func NewService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	service := &ServiceImpl{repo: repo, classes: []Class{}}
	event_bus.SubscribeTyped[event_bus.SnapshotImported](
		bus,
		event_bus.SnapshotImportedType,
		func(ctx context.Context, data event_bus.SnapshotImported) error {
			log.Debugf("snapshot imported (%d classes), reloading schedule", data.ClassCount)
			return service.Reload(ctx)
		},
	)
	event_bus.SubscribeTyped[event_bus.DataWiped](
		bus,
		event_bus.DataWipedType,
		func(ctx context.Context, _ event_bus.DataWiped) error {
			log.Debug("storage wiped, clearing schedule view")
			service.mu.Lock()
			service.classes = []Class{}
			service.mu.Unlock()
			return nil
		},
	)
	return service
}

func (s *ServiceImpl) Reload(ctx context.Context) error {
	classes, err := s.repo.FindAll(ctx)
	if err != nil {
		s.mu.Lock()
		s.classes = []Class{}
		s.mu.Unlock()
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	s.mu.Lock()
	s.classes = classes
	s.mu.Unlock()
	return nil
}

func (s *ServiceImpl) All(ctx context.Context) []Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Class{}, s.classes...)
}

func (s *ServiceImpl) ByDay(ctx context.Context, day Day) []Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Class, 0)
	for _, class := range s.classes {
		if class.Day == day {
			result = append(result, class)
		}
	}
	return result
}

func (s *ServiceImpl) Create(ctx context.Context, class Class) (Class, error) {
	if err := Validate(class); err != nil {
		return Class{}, err
	}
	class.Id = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(append([]Class{}, s.classes...), class)
	if err := s.repo.StoreAll(ctx, updated); err != nil {
		log.Errorf("failed to store new class: %v", err)
		return Class{}, err
	}
	s.classes = updated
	return class, nil
}

func (s *ServiceImpl) Update(ctx context.Context, class Class) error {
	if err := Validate(class); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append([]Class{}, s.classes...)
	found := false
	for i := range updated {
		if updated[i].Id == class.Id {
			updated[i] = class
			found = true
			break
		}
	}
	if !found {
		return ErrClassNotFound
	}
	if err := s.repo.StoreAll(ctx, updated); err != nil {
		log.Errorf("failed to store updated class %s: %v", class.Id, err)
		return err
	}
	s.classes = updated
	return nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]Class, 0, len(s.classes))
	found := false
	for _, class := range s.classes {
		if class.Id == id {
			found = true
			continue
		}
		updated = append(updated, class)
	}
	if !found {
		return ErrClassNotFound
	}
	if err := s.repo.StoreAll(ctx, updated); err != nil {
		log.Errorf("failed to store schedule after deleting class %s: %v", id, err)
		return err
	}
	s.classes = updated
	return nil
}

func (s *ServiceImpl) ConflictsByDay(ctx context.Context, day Day) []Conflict {
	classes := s.ByDay(ctx, day)
	conflicts := make([]Conflict, 0)
	for i := 0; i < len(classes); i++ {
		for j := i + 1; j < len(classes); j++ {
			if timeutils.RangesOverlap(classes[i].StartTime, classes[i].EndTime, classes[j].StartTime, classes[j].EndTime) {
				conflicts = append(conflicts, Conflict{First: classes[i], Second: classes[j]})
			}
		}
	}
	return conflicts
}
