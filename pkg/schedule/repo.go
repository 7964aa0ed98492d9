package schedule

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rooster-app/rooster/internal/storage"
	log "github.com/sirupsen/logrus"
)

const classesKey = "classes"

type Repo interface {
	// FindAll returns the stored collection in its persisted order, or an
	// empty slice when nothing is stored.
	FindAll(ctx context.Context) ([]Class, error)
	// StoreAll overwrites the whole stored collection. There is no partial
	// write; callers compute the full target collection first.
	StoreAll(ctx context.Context, classes []Class) error
}

// RepoImpl stores the class collection as one JSON array under the "classes"
// record.
type RepoImpl struct {
	kv storage.KV
}

func NewRepo(kv storage.KV) *RepoImpl {
	return &RepoImpl{kv: kv}
}

func (r *RepoImpl) FindAll(ctx context.Context) ([]Class, error) {
	data, found, err := r.kv.Get(ctx, classesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read classes: %w", err)
	}
	if !found {
		return []Class{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// A corrupt record degrades to an empty schedule instead of failing startup.
		log.Errorf("stored classes record is corrupt, falling back to empty schedule: %v", err)
		return []Class{}, nil
	}

	classes := make([]Class, 0, len(raw))
	for _, entry := range raw {
		var class Class
		if err := json.Unmarshal(entry, &class); err != nil {
			log.Warnf("dropping unreadable class entry: %v", err)
			continue
		}
		if err := Validate(class); err != nil || class.Id == "" {
			log.Warnf("dropping malformed class entry %q: %v", class.Id, err)
			continue
		}
		classes = append(classes, class)
	}
	return classes, nil
}

func (r *RepoImpl) StoreAll(ctx context.Context, classes []Class) error {
	if classes == nil {
		classes = []Class{}
	}
	data, err := json.Marshal(classes)
	if err != nil {
		return fmt.Errorf("failed to encode classes: %w", err)
	}
	if err := r.kv.Set(ctx, classesKey, data); err != nil {
		return fmt.Errorf("failed to store classes: %w", err)
	}
	return nil
}
