package http

import (
	"net/http"

	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router              *mux.Router
	log                 *logrus.Logger
	authHandler         *handler.AuthHandler
	doctorHandler       *handler.DoctorHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      func(http.Handler) http.Handler
	authRateLimiter     func(http.Handler) http.Handler
}

func NewRouter(
	log *logrus.Logger,
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware func(http.Handler) http.Handler,
	authRateLimiter func(http.Handler) http.Handler,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		log:                 log,
		authHandler:         authHandler,
		doctorHandler:       doctorHandler,
		appointmentHandler:  appointmentHandler,
		prescriptionHandler: prescriptionHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		authRateLimiter:     authRateLimiter,
	}
}

// Setup registers every route and returns the root handler. CORS and request
// logging wrap the router itself so preflight and unmatched requests pass through them.
func (r *Router) Setup() http.Handler {
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := r.router.PathPrefix("/auth").Subrouter()
	auth.Use(r.authRateLimiter)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	r.router.Handle("/auth/logout", r.protected(r.authHandler.Logout)).Methods(http.MethodPost)
	r.router.Handle("/auth/me", r.protected(r.authHandler.GetCurrentUser)).Methods(http.MethodGet)

	// Doctor directory
	r.router.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	r.router.Handle("/doctors/profile", r.protected(r.doctorHandler.UpdateProfile, middleware.RequireDoctor)).Methods(http.MethodPatch)
	r.router.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Appointments
	r.router.Handle("/appointments", r.protected(r.appointmentHandler.CreateAppointment, middleware.RequirePatient)).Methods(http.MethodPost)
	r.router.Handle("/appointments", r.protected(r.appointmentHandler.ListAppointments)).Methods(http.MethodGet)
	r.router.Handle("/appointments/{id}/status", r.protected(r.appointmentHandler.UpdateStatus)).Methods(http.MethodPatch)
	r.router.Handle("/appointments/{id}/history", r.protected(r.appointmentHandler.GetHistory)).Methods(http.MethodGet)

	// Prescriptions
	r.router.Handle("/prescriptions", r.protected(r.prescriptionHandler.CreatePrescription, middleware.RequireDoctor)).Methods(http.MethodPost)
	r.router.Handle("/prescriptions/{id}", r.protected(r.prescriptionHandler.GetPrescription)).Methods(http.MethodGet)
	r.router.Handle("/prescriptions/{id}/document", r.protected(r.prescriptionHandler.GetDocument)).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	return r.corsMiddleware(middleware.RequestLogger(r.log)(r.router))
}

// protected requires a valid access token, then runs the guards in order.
func (r *Router) protected(h http.HandlerFunc, guards ...func(http.Handler) http.Handler) http.Handler {
	var next http.Handler = h
	for i := len(guards) - 1; i >= 0; i-- {
		next = guards[i](next)
	}
	return r.authMiddleware.Authenticate(next)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
