package attendance

import (
	"time"

	"github.com/giftnest/backoffice-go/internal/config"
	"github.com/giftnest/backoffice-go/internal/domain/attendance"
)

// ShiftPolicy assigns a shift and a punctuality status to a scan. Scans
// before the afternoon start belong to the morning shift; a check-in later
// than shift start plus the grace period is late.
type ShiftPolicy struct {
	morningStart   int
	afternoonStart int
	gracePeriod    int
}

func NewShiftPolicy(cfg config.AttendanceConfig) ShiftPolicy {
	return ShiftPolicy{
		morningStart:   cfg.MorningStartMinutes,
		afternoonStart: cfg.AfternoonStartMinutes,
		gracePeriod:    cfg.GracePeriodMinutes,
	}
}

// ShiftAt returns the shift a scan at the given local time belongs to.
func (p ShiftPolicy) ShiftAt(minutesIntoDay int) attendance.Shift {
	if minutesIntoDay < p.afternoonStart {
		return attendance.ShiftMorning
	}
	return attendance.ShiftAfternoon
}

// CheckInStatus classifies a check-in against the shift-start policy.
// Check-outs are always on time; lateness only applies to arrivals.
func (p ShiftPolicy) CheckInStatus(shift attendance.Shift, minutesIntoDay int) attendance.EventStatus {
	start := p.morningStart
	if shift == attendance.ShiftAfternoon {
		start = p.afternoonStart
	}
	if minutesIntoDay > start+p.gracePeriod {
		return attendance.StatusLate
	}
	return attendance.StatusOnTime
}

// graceLimit is exposed for log lines at recording time.
func (p ShiftPolicy) graceLimit(shift attendance.Shift, day time.Time, loc *time.Location) time.Time {
	start := p.morningStart
	if shift == attendance.ShiftAfternoon {
		start = p.afternoonStart
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc).
		Add(time.Duration(start+p.gracePeriod) * time.Minute)
}
