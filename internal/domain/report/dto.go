package report

import (
	"time"

	"github.com/giftnest/backoffice-go/internal/domain/attendance"
)

// PeriodLabel renders the "Month Year" join key used by evaluations,
// feedback and reports. Every producer of period strings must go through
// this function so the keys stay consistent.
func PeriodLabel(t time.Time) string {
	return t.Format("January 2006")
}

type EmployeeInfo struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Schedule string `json:"schedule"`
}

type EvaluationInfo struct {
	ReviewerID string `json:"reviewer_id"`
	Summary    string `json:"summary"`
	Score      *int   `json:"score,omitempty"`
}

type FeedbackInfo struct {
	AuthorID string `json:"author_id"`
	Message  string `json:"message"`
}

type FeedbackGroups struct {
	Recognitions []FeedbackInfo `json:"recognitions"`
	Improvements []FeedbackInfo `json:"improvements"`
}

// ReportData is the full monthly report for one employee, assembled fresh
// on every request.
type ReportData struct {
	Employee         EmployeeInfo                 `json:"employee"`
	Period           string                       `json:"period"`
	Evaluation       *EvaluationInfo              `json:"evaluation,omitempty"`
	Feedback         FeedbackGroups               `json:"feedback"`
	Attendance       attendance.MonthlyAttendance `json:"attendance"`
	TardinessCount   int                          `json:"tardiness_count"`
	TardinessPenalty string                       `json:"tardiness_penalty"`
}
