package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/services"
)

func TestRegisterClientRejectsInvalidBody(t *testing.T) {
	h := NewClientHandler(services.NewClientService(nil, nil, zap.NewNop()), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/clientes", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.RegisterClient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterClientRejectsMissingFields(t *testing.T) {
	h := NewClientHandler(services.NewClientService(nil, nil, zap.NewNop()), zap.NewNop())

	body := `{"responsibleName":"John","orgName":"Igreja Central"}`
	req := httptest.NewRequest(http.MethodPost, "/api/clientes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.RegisterClient(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "required")
}

func TestSetStatusRejectsBadStatus(t *testing.T) {
	h := NewClientHandler(services.NewClientService(nil, nil, zap.NewNop()), zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/api/activeClient/7", strings.NewReader(`{"status":"pending"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "7"})
	rec := httptest.NewRecorder()

	h.SetStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWriteServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: all fields are required", services.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: org already registered", services.ErrDuplicate), http.StatusBadRequest},
		{fmt.Errorf("%w: client 42", services.ErrNotFound), http.StatusNotFound},
		{services.ErrWrongSecret, http.StatusUnauthorized},
		{fmt.Errorf("driver exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeServiceError(rec, zap.NewNop(), tc.err)
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
	}
}

func TestWriteServiceErrorHidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, zap.NewNop(), fmt.Errorf("pq: connection refused on 10.0.0.3"))

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp["message"], "10.0.0.3")
}
