package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/services"
	"github.com/MyDevVinicius/PainelAdminMinisterio/pkg/utils"
)

// writeServiceError maps the service error taxonomy to HTTP status codes.
// Internal causes are logged server-side only; the caller gets a generic
// message.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrDuplicate):
		utils.Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.Message(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrWrongSecret):
		utils.Message(w, http.StatusUnauthorized, "Wrong secret")
	default:
		logger.Error("request failed", zap.Error(err))
		utils.Message(w, http.StatusInternalServerError, "Internal server error. Try again.")
	}
}
