package attendance

import (
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
	"github.com/giftnest/backoffice-go/internal/domain/leave"
	"github.com/giftnest/backoffice-go/internal/domain/user"
)

// ReconcileInput carries everything the monthly rebuild needs. The caller
// fetches events and approved leave for the month window; reconciliation
// itself touches no storage, so recomputing is always safe.
type ReconcileInput struct {
	Schedule      user.Schedule
	MonthStart    time.Time
	DaysInMonth   int
	Events        []attendance.ClockEvent
	ApprovedLeave []leave.LeaveRequest
	Location      *time.Location
}

type shiftState struct {
	checkIn  *time.Time
	checkOut *time.Time
	late     bool
}

type dayState struct {
	morning   shiftState
	afternoon shiftState
	anyEvent  bool
	anyLate   bool
}

// BuildMonthlyAttendance rebuilds the per-day calendar for one employee and
// month and returns it with the count of days containing a late check-in.
// Output covers every day 1..DaysInMonth with no gaps.
func BuildMonthlyAttendance(in ReconcileInput) (attendance.MonthlyAttendance, int) {
	days := make(map[int]*dayState, in.DaysInMonth)
	for d := 1; d <= in.DaysInMonth; d++ {
		days[d] = &dayState{}
	}

	for _, ev := range in.Events {
		local := ev.Timestamp.In(in.Location)
		state, ok := days[local.Day()]
		if !ok {
			continue // outside the month window, defensive against sloppy callers
		}
		state.anyEvent = true

		shift := &state.morning
		if ev.Shift == attendance.ShiftAfternoon {
			shift = &state.afternoon
		}

		switch ev.Type {
		case attendance.EventCheckIn:
			if ev.Status == attendance.StatusLate {
				state.anyLate = true
			}
			// First check-in per shift is the representative one; later
			// toggles only matter for the recorder's toggle decision.
			if shift.checkIn == nil {
				t := local
				shift.checkIn = &t
				shift.late = ev.Status == attendance.StatusLate
			}
		case attendance.EventCheckOut:
			if shift.checkOut == nil {
				t := local
				shift.checkOut = &t
			}
		}
	}

	leaveDays := make(map[int]bool, len(in.ApprovedLeave))
	for _, lr := range in.ApprovedLeave {
		// leave_date is a calendar date with no wall-clock meaning, so read
		// its components as stored. Converting the instant into Location
		// would shift midnight UTC onto the previous local day.
		leaveDays[lr.LeaveDate.Day()] = true
	}

	calendar := make(attendance.MonthlyAttendance, in.DaysInMonth)
	tardyDays := 0

	for d := 1; d <= in.DaysInMonth; d++ {
		state := days[d]
		date := in.MonthStart.AddDate(0, 0, d-1)

		if state.anyLate {
			tardyDays++
		}

		calendar[d] = attendance.DailyAttendance{
			Date:      date.Format("2006-01-02"),
			Status:    classifyDay(date, state, in.Schedule, leaveDays[d]),
			Morning:   toShiftAttendance(state.morning),
			Afternoon: toShiftAttendance(state.afternoon),
		}
	}

	return calendar, tardyDays
}

// classifyDay derives the day status. Precedence: weekends are always
// absent, a late arrival beats presence, presence beats leave, approved
// leave upgrades an otherwise absent day to excused.
func classifyDay(date time.Time, state *dayState, schedule user.Schedule, onLeave bool) attendance.DayStatus {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return attendance.DayAbsent
	}

	if state.morning.late || state.afternoon.late {
		return attendance.DayLate
	}

	morningPresent := state.morning.checkIn != nil && state.morning.checkOut != nil
	afternoonPresent := state.afternoon.checkIn != nil && state.afternoon.checkOut != nil

	switch schedule {
	case user.ScheduleMorning:
		if morningPresent {
			return attendance.DayPresentMorning
		}
	case user.ScheduleAfternoon:
		if afternoonPresent {
			return attendance.DayPresentAfternoon
		}
	default: // full day
		if morningPresent && afternoonPresent {
			return attendance.DayPresent
		}
		if morningPresent || afternoonPresent {
			return attendance.DayIncomplete
		}
	}

	// A stray event with no satisfied shift (a lone check-out after a lost
	// check-in, a half pair) is surfaced, never silently dropped.
	if state.anyEvent {
		return attendance.DayIncomplete
	}

	if onLeave {
		return attendance.DayExcused
	}

	return attendance.DayAbsent
}

func toShiftAttendance(s shiftState) attendance.ShiftAttendance {
	out := attendance.ShiftAttendance{Late: s.late}
	if s.checkIn != nil {
		v := s.checkIn.Format("15:04:05")
		out.CheckIn = &v
	}
	if s.checkOut != nil {
		v := s.checkOut.Format("15:04:05")
		out.CheckOut = &v
	}
	return out
}
