package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
	"github.com/giftnest/backoffice-go/internal/domain/performance"
	"github.com/giftnest/backoffice-go/internal/domain/report"
	"github.com/giftnest/backoffice-go/internal/domain/user"
)

type ReportServiceImpl struct {
	users       user.UserRepository
	performance performance.Repository
	attendance  attendance.AttendanceService
}

func NewReportService(
	userRepo user.UserRepository,
	performanceRepo performance.Repository,
	attendanceService attendance.AttendanceService,
) report.ReportService {
	return &ReportServiceImpl{
		users:       userRepo,
		performance: performanceRepo,
		attendance:  attendanceService,
	}
}

// GenerateEmployeeReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateEmployeeReport(ctx context.Context, employeeID string, period time.Time) (*report.ReportData, error) {
	emp, err := s.users.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, nil // lookup miss, partial data is acceptable for reports
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	periodLabel := report.PeriodLabel(period)

	evaluation, err := s.performance.GetEvaluation(ctx, emp.ID, periodLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}

	feedback, err := s.performance.ListFeedback(ctx, emp.ID, periodLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	monthly, err := s.attendance.GetMonthlyAttendance(ctx, emp.ID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly attendance: %w", err)
	}

	data := &report.ReportData{
		Employee: report.EmployeeInfo{
			ID:       emp.ID,
			FullName: emp.FullName,
			Role:     string(emp.Role),
			Schedule: string(emp.WorkSchedule()),
		},
		Period: periodLabel,
		Feedback: report.FeedbackGroups{
			Recognitions: []report.FeedbackInfo{},
			Improvements: []report.FeedbackInfo{},
		},
		Attendance:       monthly.Days,
		TardinessCount:   monthly.TardinessCount,
		TardinessPenalty: monthly.TardinessPenalty,
	}

	if evaluation != nil {
		data.Evaluation = &report.EvaluationInfo{
			ReviewerID: evaluation.ReviewerID,
			Summary:    evaluation.Summary,
			Score:      evaluation.Score,
		}
	}

	for _, f := range feedback {
		info := report.FeedbackInfo{AuthorID: f.AuthorID, Message: f.Message}
		switch f.Type {
		case performance.FeedbackRecognition:
			data.Feedback.Recognitions = append(data.Feedback.Recognitions, info)
		case performance.FeedbackImprovement:
			data.Feedback.Improvements = append(data.Feedback.Improvements, info)
		}
	}

	return data, nil
}
