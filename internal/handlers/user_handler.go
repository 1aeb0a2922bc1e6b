package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/services"
	"github.com/MyDevVinicius/PainelAdminMinisterio/pkg/utils"
)

// UserHandler manages panel operator accounts (admin_users).
type UserHandler struct {
	Service *services.AdminUserService
	Logger  *zap.Logger
}

func NewUserHandler(s *services.AdminUserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: s, Logger: logger}
}

// CreateUser handles POST /api/usuarios.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdminUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.Service.CreateUser(r.Context(), &req); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	utils.Message(w, http.StatusCreated, "User created successfully")
}

// UpdateUser handles PUT /api/usuarios.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAdminUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.UpdateUser(r.Context(), &req); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	utils.Message(w, http.StatusOK, "User updated successfully")
}

// DeleteUser handles DELETE /api/usuarios?id=.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "User id is required")
		return
	}

	if err := h.Service.DeleteUser(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	utils.Message(w, http.StatusOK, "User deleted successfully")
}

// ListUsers handles GET /api/listUser.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	if users == nil {
		users = []*models.AdminUser{}
	}

	utils.JSON(w, http.StatusOK, users)
}
