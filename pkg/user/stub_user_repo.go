package user

import (
	"context"
	"errors"
)

// StubUserRepo is an in-memory Repo for service tests.
type StubUserRepo struct {
	Profile    *Profile
	FailWrites bool
}

func (s *StubUserRepo) Get(ctx context.Context) (*Profile, error) {
	if s.Profile == nil {
		return nil, nil
	}
	profile := *s.Profile
	return &profile, nil
}

func (s *StubUserRepo) Save(ctx context.Context, profile Profile) error {
	if s.FailWrites {
		return errors.New("storage write failed")
	}
	s.Profile = &profile
	return nil
}
