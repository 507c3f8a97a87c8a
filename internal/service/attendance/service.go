package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
	"github.com/giftnest/backoffice-go/internal/domain/leave"
	"github.com/giftnest/backoffice-go/internal/domain/user"
	"github.com/giftnest/backoffice-go/internal/pkg/clock"
	"github.com/giftnest/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	tx     database.TxRunner
	events attendance.ClockEventRepository
	users  user.UserRepository
	leaves leave.LeaveRequestRepository

	clock   *clock.Clock
	policy  ShiftPolicy
	penalty decimal.Decimal
}

func NewAttendanceService(
	tx database.TxRunner,
	eventRepo attendance.ClockEventRepository,
	userRepo user.UserRepository,
	leaveRepo leave.LeaveRequestRepository,
	clk *clock.Clock,
	policy ShiftPolicy,
	penalty decimal.Decimal,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:      tx,
		events:  eventRepo,
		users:   userRepo,
		leaves:  leaveRepo,
		clock:   clk,
		policy:  policy,
		penalty: penalty,
	}
}

// RecordScan implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordScan(ctx context.Context, req attendance.RecordScanRequest) (attendance.ClockEventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockEventResponse{}, err
	}

	scanned, err := s.users.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return attendance.ClockEventResponse{}, attendance.ErrInvalidScanTarget
		}
		return attendance.ClockEventResponse{}, fmt.Errorf("failed to resolve scanned badge: %w", err)
	}
	if !scanned.IsEmployee() {
		return attendance.ClockEventResponse{}, attendance.ErrInvalidScanTarget
	}

	now := s.clock.Now()
	dayStart, dayEnd := s.clock.DayWindow(now)

	var event attendance.ClockEvent

	// The toggle decision and the insert commit together, serialized per
	// employee per day so two near-simultaneous scans cannot both decide
	// check-in.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.events.LockEmployeeDay(txCtx, scanned.ID, dayStart); err != nil {
			return err
		}

		last, err := s.events.GetLastEventBetween(txCtx, scanned.ID, dayStart, dayEnd)
		if err != nil {
			return err
		}

		eventType := attendance.EventCheckIn
		if last != nil && last.Type == attendance.EventCheckIn {
			eventType = attendance.EventCheckOut
		}

		minutes := s.clock.MinutesIntoDay(now)
		shift := s.policy.ShiftAt(minutes)

		status := attendance.StatusOnTime
		if eventType == attendance.EventCheckIn {
			status = s.policy.CheckInStatus(shift, minutes)
		}

		event = attendance.ClockEvent{
			ID:          uuid.New().String(),
			EmployeeID:  scanned.ID,
			RegistrarID: req.RegistrarID,
			Timestamp:   now,
			Type:        eventType,
			Shift:       shift,
			Status:      status,
		}

		event, err = s.events.Create(txCtx, event)
		return err
	})
	if err != nil {
		return attendance.ClockEventResponse{}, fmt.Errorf("failed to record scan: %w", err)
	}

	if event.Status == attendance.StatusLate {
		slog.Info("late check-in recorded",
			"employee_id", event.EmployeeID,
			"shift", event.Shift,
			"grace_limit", s.policy.graceLimit(event.Shift, now, s.clock.Location()).Format(time.RFC3339),
		)
	}

	return attendance.ClockEventResponse{
		ID:          event.ID,
		EmployeeID:  event.EmployeeID,
		RegistrarID: event.RegistrarID,
		Timestamp:   event.Timestamp.Format(time.RFC3339),
		Type:        string(event.Type),
		Shift:       string(event.Shift),
		Status:      string(event.Status),
	}, nil
}

// GetMonthlyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyAttendance(ctx context.Context, employeeID string, period time.Time) (attendance.MonthlyAttendanceResponse, error) {
	emp, err := s.users.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsEmployee() {
		return attendance.MonthlyAttendanceResponse{}, attendance.ErrInvalidScanTarget
	}

	monthStart, monthEnd := s.clock.MonthWindow(period)

	events, err := s.events.ListByEmployeeBetween(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("failed to list clock events: %w", err)
	}

	approved, err := s.leaves.ListApprovedBetween(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return attendance.MonthlyAttendanceResponse{}, fmt.Errorf("failed to list approved leave: %w", err)
	}

	calendar, tardyDays := BuildMonthlyAttendance(ReconcileInput{
		Schedule:      emp.WorkSchedule(),
		MonthStart:    monthStart,
		DaysInMonth:   s.clock.DaysInMonth(period),
		Events:        events,
		ApprovedLeave: approved,
		Location:      s.clock.Location(),
	})

	return attendance.MonthlyAttendanceResponse{
		EmployeeID:       emp.ID,
		EmployeeName:     emp.FullName,
		Month:            int(monthStart.Month()),
		Year:             monthStart.Year(),
		Days:             calendar,
		TardinessCount:   tardyDays,
		TardinessPenalty: s.penalty.Mul(decimal.NewFromInt(int64(tardyDays))).StringFixed(2),
	}, nil
}
