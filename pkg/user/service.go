package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/rooster-app/rooster/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// Wiper removes every stored record. Satisfied by storage.Store.
type Wiper interface {
	WipeAll(ctx context.Context) error
}

type Service interface {
	// Get returns the stored profile, or nil before onboarding.
	Get(ctx context.Context) (*Profile, error)
	// Set validates and persists the profile, replacing any existing one.
	Set(ctx context.Context, profile Profile) error
	// Clear is a factory reset: it wipes the profile together with all
	// classes and settings, returning the app to its pre-onboarding state.
	Clear(ctx context.Context) error
}

type ServiceImpl struct {
	repo  Repo
	wiper Wiper
	bus   *event_bus.EventBus
}

func NewService(repo Repo, wiper Wiper, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, wiper: wiper, bus: bus}
}

func (s *ServiceImpl) Get(ctx context.Context) (*Profile, error) {
	return s.repo.Get(ctx)
}

func (s *ServiceImpl) Set(ctx context.Context, profile Profile) error {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if !profile.Role.Valid() {
		return fmt.Errorf("%w: unsupported role %q", ErrValidation, profile.Role)
	}
	return s.repo.Save(ctx, profile)
}

func (s *ServiceImpl) Clear(ctx context.Context) error {
	if err := s.wiper.WipeAll(ctx); err != nil {
		return fmt.Errorf("failed to clear user data: %w", err)
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.DataWipedType, event_bus.DataWiped{})); err != nil {
		log.Errorf("failed to notify about wiped data: %v", err)
	}
	return nil
}
