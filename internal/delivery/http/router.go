package http

import (
	"net/http"
	"time"

	"clinic-api/internal/delivery/http/handler"
	"clinic-api/internal/delivery/http/middleware"
	"clinic-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	appointmentHandler  *handler.AppointmentHandler
	invoiceHandler      *handler.InvoiceHandler
	statsHandler        *handler.StatsHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	recoveryMiddleware  *middleware.RecoveryMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	invoiceHandler *handler.InvoiceHandler,
	statsHandler *handler.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		appointmentHandler:  appointmentHandler,
		invoiceHandler:      invoiceHandler,
		statsHandler:        statsHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		recoveryMiddleware:  recoveryMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	// Health check (not rate limited)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// API routes share the per-address rate limit
	api := r.router.PathPrefix("/api").Subrouter()
	api.Use(r.rateLimitMiddleware.Handle)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.Handle("/me", r.authMiddleware.Authenticate(http.HandlerFunc(r.authHandler.Me))).Methods(http.MethodGet)

	// Everything else requires a bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Detail).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)

	protected.HandleFunc("/invoices", r.invoiceHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/invoices", r.invoiceHandler.Create).Methods(http.MethodPost)

	protected.HandleFunc("/prescriptions", r.patientHandler.CreatePrescription).Methods(http.MethodPost)

	protected.HandleFunc("/stats", r.statsHandler.Get).Methods(http.MethodGet)

	// Recovery and CORS wrap the router itself rather than registering
	// as mux middleware: mux only runs Use middleware on matched routes,
	// and browser preflights (OPTIONS) never match the method-restricted
	// routes above. CORS must answer them before routing happens.
	return r.recoveryMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
