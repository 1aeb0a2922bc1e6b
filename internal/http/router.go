package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/handlers"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/middleware"
)

func NewRouter(
	clientHandler *handlers.ClientHandler,
	userHandler *handlers.UserHandler,
	authHandler *handlers.AuthHandler,
	notificationHandler *handlers.NotificationHandler,
	healthHandler *handlers.HealthHandler,
	infrastructureHandler *handlers.InfrastructureHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Runs after route matching so the metrics label is the route template.
	r.Use(middleware.MetricsMiddleware)

	// Operational endpoints
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Authentication
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")

	// Client registry and tenant provisioning. The panel frontend gates
	// these pages client-side with the token from /api/login.
	r.HandleFunc("/api/clientes", clientHandler.RegisterClient).Methods("POST")
	r.HandleFunc("/api/listagem", clientHandler.ListClients).Methods("GET")
	r.HandleFunc("/api/editClient/{id}", clientHandler.UpdateClient).Methods("PUT")
	r.HandleFunc("/api/activeClient/{id}", clientHandler.SetStatus).Methods("PUT")
	r.HandleFunc("/api/deleteCliente/{id}", clientHandler.DeleteClient).Methods("DELETE")

	// Panel operators
	r.HandleFunc("/api/usuarios", userHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/usuarios", userHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/usuarios", userHandler.DeleteUser).Methods("DELETE")
	r.HandleFunc("/api/listUser", userHandler.ListUsers).Methods("GET")

	// Notifications (no update endpoint)
	r.HandleFunc("/api/notificacoes", notificationHandler.ListNotifications).Methods("GET")
	r.HandleFunc("/api/notificacoes", notificationHandler.CreateNotification).Methods("POST")
	r.HandleFunc("/api/notificacoes", notificationHandler.DeleteNotification).Methods("DELETE")

	// Infrastructure stats require an authenticated operator
	infraAPI := r.PathPrefix("/api/infrastructure").Subrouter()
	infraAPI.Use(authMiddleware.Authenticate)
	infraAPI.HandleFunc("", infrastructureHandler.Stats).Methods("GET")

	return r
}
