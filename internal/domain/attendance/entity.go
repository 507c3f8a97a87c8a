package attendance

import (
	"time"
)

type EventType string

const (
	EventCheckIn  EventType = "check_in"
	EventCheckOut EventType = "check_out"
)

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

type EventStatus string

const (
	StatusOnTime EventStatus = "on_time"
	StatusLate   EventStatus = "late"
)

// ClockEvent is one immutable badge scan. Events are only ever appended;
// the calendar is rebuilt from them on every report request.
type ClockEvent struct {
	ID          string
	EmployeeID  string
	RegistrarID string
	Timestamp   time.Time
	Type        EventType
	Shift       Shift
	Status      EventStatus
	CreatedAt   time.Time
}

type DayStatus string

const (
	DayPresent          DayStatus = "present"
	DayPresentMorning   DayStatus = "present_morning"
	DayPresentAfternoon DayStatus = "present_afternoon"
	DayIncomplete       DayStatus = "incomplete"
	DayLate             DayStatus = "late"
	DayAbsent           DayStatus = "absent"
	DayExcused          DayStatus = "excused"
)
