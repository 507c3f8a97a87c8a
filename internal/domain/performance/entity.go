package performance

import (
	"time"
)

// Evaluation is a manager's monthly appraisal of one employee, scoped to a
// period label ("January 2026"). The label is the join key shared with
// feedback and attendance reports.
type Evaluation struct {
	ID         string
	EmployeeID string
	ReviewerID string
	Period     string
	Summary    string
	Score      *int
	CreatedAt  time.Time
}

type FeedbackType string

const (
	FeedbackRecognition FeedbackType = "recognition"
	FeedbackImprovement FeedbackType = "improvement"
)

// Feedback is a single free-text note about an employee within a period.
type Feedback struct {
	ID         string
	EmployeeID string
	AuthorID   string
	Period     string
	Type       FeedbackType
	Message    string
	CreatedAt  time.Time
}
