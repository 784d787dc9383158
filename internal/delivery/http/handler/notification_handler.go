package handler

import (
	"net/http"

	"pet-clinic-api/internal/usecase"
	"pet-clinic-api/pkg/response"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

func (h *NotificationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) GetUpcomingReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.notificationUsecase.GetUpcomingReminders(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reminders")
		return
	}

	response.Success(w, http.StatusOK, "Reminders retrieved successfully", reminders)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.notificationUsecase.MarkRead(r.Context(), vars["id"]); err != nil {
		response.InternalServerError(w, "Failed to mark notification as read")
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", nil)
}
