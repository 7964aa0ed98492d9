package schedule

import "errors"

// Day is a lowercase weekday tag. Classes can only be scheduled on school
// days, monday through friday.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
)

// DaysOfWeek lists the supported days in week order.
var DaysOfWeek = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid reports whether d is one of the supported weekday tags.
func (d Day) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// Class is one recurring weekly class session. Times are "HH:MM" wall-clock
// strings with StartTime < EndTime. Teacher and student names are both
// recorded regardless of which role the device user holds, so a student can
// track their teacher's name and vice versa.
type Class struct {
	Id        string `json:"id"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Student   string `json:"student"`
	Day       Day    `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Color     string `json:"color"`
}

// Conflict is a pair of same-day classes whose time ranges overlap. Overlaps
// are reported, not rejected: the schedule accepts them and leaves resolution
// to the user.
type Conflict struct {
	First  Class
	Second Class
}

// SubjectColors is the fixed palette a class color is picked from. The color
// is purely presentational but persisted with the class.
var SubjectColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
}

// TimeSlots is the half-hour grid offered by schedule entry forms.
var TimeSlots = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30", "18:00",
}

var (
	ErrClassNotFound = errors.New("class not found")
	// ErrValidation is wrapped by all field-level validation failures so
	// callers can map them as a group.
	ErrValidation = errors.New("invalid class")
)
