package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/services"
	"github.com/MyDevVinicius/PainelAdminMinisterio/pkg/utils"
)

type ClientHandler struct {
	Service *services.ClientService
	Logger  *zap.Logger
}

func NewClientHandler(s *services.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{Service: s, Logger: logger}
}

// RegisterClient handles POST /api/clientes.
func (h *ClientHandler) RegisterClient(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Service.RegisterClient(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Client registered successfully",
		"clientId":   result.ClientID,
		"accessCode": result.AccessCode,
	})
}

// ListClients handles GET /api/listagem.
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Service.ListClients(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}

	utils.JSON(w, http.StatusOK, clients)
}

// UpdateClient handles PUT /api/editClient/{id}.
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "Client id is required")
		return
	}

	var req models.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	accessKey, err := h.Service.UpdateClient(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"message":   "Client and tenant user updated successfully",
		"accessKey": accessKey,
	})
}

// SetStatus handles PUT /api/activeClient/{id}.
func (h *ClientHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "Client id is required")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.SetClientStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"message": "Status updated successfully",
		"status":  req.Status,
	})
}

// DeleteClient handles DELETE /api/deleteCliente/{id}.
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Message(w, http.StatusBadRequest, "Client id is required")
		return
	}

	if err := h.Service.DeleteClient(r.Context(), id); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	utils.Message(w, http.StatusOK, "Client and its tenant schema deleted successfully")
}
