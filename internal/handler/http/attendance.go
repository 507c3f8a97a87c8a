package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
	"github.com/giftnest/backoffice-go/internal/handler/http/middleware"
	"github.com/giftnest/backoffice-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordScan(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// RecordScan implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecordScan(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The registrar is the authenticated station operator.
	if registrarID, ok := middleware.UserIDFromContext(r); ok {
		req.RegistrarID = registrarID
	}

	result, err := h.attendanceService.RecordScan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Scan recorded", result)
}

// GetMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	period, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetMonthlyAttendance(r.Context(), employeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parsePeriod reads month and year query params, defaulting to the current
// month. The returned instant is mid-month noon UTC so it lands in the same
// month regardless of the app timezone.
func parsePeriod(r *http.Request) (time.Time, error) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return time.Time{}, attendance.ErrInvalidPeriod
		}
		month = m
	}

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 2000 || y > now.Year()+1 {
			return time.Time{}, attendance.ErrInvalidPeriod
		}
		year = y
	}

	return time.Date(year, time.Month(month), 15, 12, 0, 0, 0, time.UTC), nil
}
