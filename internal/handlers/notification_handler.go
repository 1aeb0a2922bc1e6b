package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/services"
	"github.com/MyDevVinicius/PainelAdminMinisterio/pkg/utils"
)

type NotificationHandler struct {
	Service *services.NotificationService
	Logger  *zap.Logger
}

func NewNotificationHandler(s *services.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Service: s, Logger: logger}
}

// CreateNotification handles POST /api/notificacoes.
func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.Service.CreateNotification(r.Context(), &req); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	utils.Message(w, http.StatusCreated, "Notification created successfully")
}

// ListNotifications handles GET /api/notificacoes.
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Service.ListNotifications(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}

	utils.JSON(w, http.StatusOK, notifications)
}

// DeleteNotification handles DELETE /api/notificacoes. The id comes in the
// body, matching the panel frontend.
func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.DeleteNotification(r.Context(), req.ID); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	utils.Message(w, http.StatusOK, "Notification deleted successfully")
}
