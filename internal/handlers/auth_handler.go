package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/auth"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/services"
	"github.com/MyDevVinicius/PainelAdminMinisterio/pkg/utils"
)

type AuthHandler struct {
	Service    *services.AdminUserService
	JWTManager *auth.JWTManager
	Logger     *zap.Logger
}

func NewAuthHandler(s *services.AdminUserService, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Service: s, JWTManager: jwtManager, Logger: logger}
}

// Login handles POST /api/login. The issued token is used by the frontend
// to gate pages client-side.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	token, err := h.JWTManager.GenerateToken(user)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}
