package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidScanTarget = errors.New("scanned badge does not belong to an employee")
	ErrInvalidPeriod     = errors.New("invalid report period")
)
