package schedule

import (
	"context"
	"errors"
)

// StubScheduleRepo is an in-memory Repo for service tests. When FailWrites is
// set, StoreAll returns an error without touching the stored slice.
type StubScheduleRepo struct {
	Classes    []Class
	FailWrites bool
	FailReads  bool
}

func (s *StubScheduleRepo) FindAll(ctx context.Context) ([]Class, error) {
	if s.FailReads {
		return nil, errors.New("storage read failed")
	}
	return append([]Class{}, s.Classes...), nil
}

func (s *StubScheduleRepo) StoreAll(ctx context.Context, classes []Class) error {
	if s.FailWrites {
		return errors.New("storage write failed")
	}
	s.Classes = append([]Class{}, classes...)
	return nil
}
