package user

import "errors"

// Role is who the device user is in the schedule: the student taking the
// classes or the teacher giving them.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// Profile is the single local user. It is created during onboarding and only
// ever replaced whole; its absence is a valid pre-onboarding state that gates
// the schedule screens.
type Profile struct {
	Role Role   `json:"role"`
	Name string `json:"name"`
}

var (
	ErrNoProfile = errors.New("no user profile stored")
	// ErrValidation is wrapped by all profile validation failures.
	ErrValidation = errors.New("invalid profile")
)
