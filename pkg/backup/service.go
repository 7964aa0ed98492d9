package backup

import (
	"context"
	"fmt"

	"github.com/rooster-app/rooster/internal/event_bus"
	"github.com/rooster-app/rooster/internal/storage"
	"github.com/rooster-app/rooster/pkg/schedule"
	"github.com/rooster-app/rooster/pkg/settings"
	"github.com/rooster-app/rooster/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Store gives the snapshot operations transactional access to the records, so
// an export reads a consistent view and a failed import leaves prior state
// untouched. Satisfied by storage.Store.
type Store interface {
	WithTx(ctx context.Context, fn func(kv storage.KV) error) error
}

type Service interface {
	Export(ctx context.Context) (Snapshot, error)
	// Import overwrites the stored classes and settings with the snapshot's.
	// The user record is only replaced when the snapshot carries one; a nil
	// user never deletes an existing profile.
	Import(ctx context.Context, snapshot Snapshot) error
}

type ServiceImpl struct {
	store Store
	bus   *event_bus.EventBus
}

func NewService(store Store, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{store: store, bus: bus}
}

func (s *ServiceImpl) Export(ctx context.Context) (Snapshot, error) {
	var snapshot Snapshot
	err := s.store.WithTx(ctx, func(kv storage.KV) error {
		profile, err := user.NewRepo(kv).Get(ctx)
		if err != nil {
			return err
		}
		classes, err := schedule.NewRepo(kv).FindAll(ctx)
		if err != nil {
			return err
		}
		appSettings, err := settings.NewRepo(kv).Get(ctx)
		if err != nil {
			return err
		}
		snapshot = Snapshot{User: profile, Classes: classes, Settings: appSettings}
		return nil
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to export snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *ServiceImpl) Import(ctx context.Context, snapshot Snapshot) error {
	classes := make([]schedule.Class, 0, len(snapshot.Classes))
	for _, class := range snapshot.Classes {
		if class.Id == "" {
			log.Warnf("dropping imported class without id (%s)", class.Subject)
			continue
		}
		if err := schedule.Validate(class); err != nil {
			log.Warnf("dropping invalid imported class %s: %v", class.Id, err)
			continue
		}
		classes = append(classes, class)
	}
	appSettings := snapshot.Settings
	if appSettings.Theme != settings.ThemeLight && appSettings.Theme != settings.ThemeDark {
		appSettings = settings.Default()
	}

	err := s.store.WithTx(ctx, func(kv storage.KV) error {
		if snapshot.User != nil {
			if err := user.NewRepo(kv).Save(ctx, *snapshot.User); err != nil {
				return err
			}
		}
		if err := schedule.NewRepo(kv).StoreAll(ctx, classes); err != nil {
			return err
		}
		return settings.NewRepo(kv).Save(ctx, appSettings)
	})
	if err != nil {
		return fmt.Errorf("failed to import snapshot: %w", err)
	}

	imported := event_bus.SnapshotImported{ClassCount: len(classes), UserChanged: snapshot.User != nil}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.SnapshotImportedType, imported)); err != nil {
		log.Errorf("failed to notify about imported snapshot: %v", err)
	}
	return nil
}
