package http

import (
	"encoding/json"
	"net/http"

	"github.com/giftnest/backoffice-go/internal/domain/performance"
	"github.com/giftnest/backoffice-go/internal/handler/http/middleware"
	"github.com/giftnest/backoffice-go/internal/handler/http/response"
	performanceService "github.com/giftnest/backoffice-go/internal/service/performance"
)

type PerformanceHandler interface {
	CreateEvaluation(w http.ResponseWriter, r *http.Request)
	CreateFeedback(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService *performanceService.Service
}

func NewPerformanceHandler(svc *performanceService.Service) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: svc,
	}
}

// CreateEvaluation implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reviewerID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	req.ReviewerID = reviewerID

	result, err := h.performanceService.CreateEvaluation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Evaluation recorded", result)
}

// CreateFeedback implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	authorID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	req.AuthorID = authorID

	result, err := h.performanceService.CreateFeedback(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Feedback recorded", result)
}
