package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordScan processes one badge scan at the registrar station, toggling
	// between check-in and check-out based on the employee's last event today
	RecordScan(ctx context.Context, req RecordScanRequest) (ClockEventResponse, error)

	// GetMonthlyAttendance rebuilds the day-by-day calendar for the month
	// containing period, with tardiness totals
	GetMonthlyAttendance(ctx context.Context, employeeID string, period time.Time) (MonthlyAttendanceResponse, error)
}
