package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestRouteLabelUsesRouteTemplate(t *testing.T) {
	var label string

	r := mux.NewRouter()
	r.Use(MetricsMiddleware)
	r.HandleFunc("/api/editClient/{id}", func(w http.ResponseWriter, req *http.Request) {
		label = routeLabel(req)
		w.WriteHeader(http.StatusOK)
	}).Methods("PUT")

	req := httptest.NewRequest(http.MethodPut, "/api/editClient/42", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "/api/editClient/{id}", label,
		"per-client paths must collapse into one series")
}

func TestRouteLabelFallsBackToRawPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/unrouted/path", nil)
	assert.Equal(t, "/unrouted/path", routeLabel(req))
}
