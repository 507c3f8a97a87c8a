package attendance

import (
	"github.com/giftnest/backoffice-go/internal/pkg/validator"
)

type RecordScanRequest struct {
	RegistrarID string `json:"registrar_id"`
	EmployeeID  string `json:"employee_id"`
}

func (r *RecordScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RegistrarID) {
		errs = append(errs, validator.ValidationError{
			Field:   "registrar_id",
			Message: "registrar_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockEventResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	RegistrarID string `json:"registrar_id"`
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
	Shift       string `json:"shift"`
	Status      string `json:"status"`
}

// ShiftAttendance is the representative check-in/check-out pair of one shift.
type ShiftAttendance struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Late     bool    `json:"late"`
}

// DailyAttendance is the derived classification of one calendar day.
// Never persisted: recomputation from the event log is the source of truth.
type DailyAttendance struct {
	Date      string          `json:"date"`
	Status    DayStatus       `json:"status"`
	Morning   ShiftAttendance `json:"morning"`
	Afternoon ShiftAttendance `json:"afternoon"`
}

// MonthlyAttendance maps day-of-month (1..daysInMonth) to its classification.
type MonthlyAttendance map[int]DailyAttendance

type MonthlyAttendanceResponse struct {
	EmployeeID       string            `json:"employee_id"`
	EmployeeName     string            `json:"employee_name"`
	Month            int               `json:"month"`
	Year             int               `json:"year"`
	Days             MonthlyAttendance `json:"days"`
	TardinessCount   int               `json:"tardiness_count"`
	TardinessPenalty string            `json:"tardiness_penalty"`
}
