package http

import (
	"encoding/json"
	"net/http"

	"github.com/giftnest/backoffice-go/internal/domain/leave"
	"github.com/giftnest/backoffice-go/internal/handler/http/middleware"
	"github.com/giftnest/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	req.EmployeeID = employeeID

	result, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// UpdateStatus implements LeaveHandler.
func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reviewerID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ReviewerID = reviewerID

	result, err := h.leaveService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements LeaveHandler.
func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements LeaveHandler.
func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	result, err := h.leaveService.ListMyRequests(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPending implements LeaveHandler.
func (h *leaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
