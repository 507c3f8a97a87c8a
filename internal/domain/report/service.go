package report

import (
	"context"
	"time"
)

// ReportService assembles the monthly employee report.
type ReportService interface {
	// GenerateEmployeeReport builds the report for the month containing
	// period. Returns (nil, nil) when the employee does not exist: a
	// reporting lookup miss is not an error.
	GenerateEmployeeReport(ctx context.Context, employeeID string, period time.Time) (*ReportData, error)
}
