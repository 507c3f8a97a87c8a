package performance

import (
	"github.com/giftnest/backoffice-go/internal/pkg/validator"
)

type CreateEvaluationRequest struct {
	EmployeeID string `json:"employee_id"`
	ReviewerID string `json:"-"`
	Period     string `json:"period"`
	Summary    string `json:"summary"`
	Score      *int   `json:"score,omitempty"`
}

func (r *CreateEvaluationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period is required",
		})
	}

	if validator.IsEmpty(r.Summary) {
		errs = append(errs, validator.ValidationError{
			Field:   "summary",
			Message: "summary is required",
		})
	}

	if r.Score != nil && (*r.Score < 1 || *r.Score > 10) {
		errs = append(errs, validator.ValidationError{
			Field:   "score",
			Message: "score must be between 1 and 10",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateFeedbackRequest struct {
	EmployeeID string `json:"employee_id"`
	AuthorID   string `json:"-"`
	Period     string `json:"period"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

func (r *CreateFeedbackRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period is required",
		})
	}

	if !validator.IsInSlice(r.Type, []string{string(FeedbackRecognition), string(FeedbackImprovement)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be recognition or improvement",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
