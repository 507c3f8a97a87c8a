package http

import (
	"encoding/json"
	"net/http"

	"github.com/giftnest/backoffice-go/internal/handler/http/middleware"
	"github.com/giftnest/backoffice-go/internal/handler/http/response"
	notificationService "github.com/giftnest/backoffice-go/internal/service/notification"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService *notificationService.Service
}

func NewNotificationHandler(svc *notificationService.Service) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: svc,
	}
}

// List implements NotificationHandler.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	unreadOnly := r.URL.Query().Get("unread_only") == "true"

	result, err := h.notificationService.List(r.Context(), userID, unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UnreadCount implements NotificationHandler.
func (h *notificationHandlerImpl) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	count, err := h.notificationService.UnreadCount(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"unread_count": count})
}

// MarkAsRead implements NotificationHandler. An empty id list marks
// every notification for the caller as read.
func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.notificationService.MarkAsRead(r.Context(), userID, req.IDs); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
