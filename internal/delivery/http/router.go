package http

import (
	"net/http"

	"hospital-api/internal/delivery/http/handler"
	"hospital-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	patientHandler    *handler.PatientHandler
	referenceHandler  *handler.ReferenceHandler
	auditLogHandler   *handler.AuditLogHandler
	loggingMiddleware *middleware.LoggingMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	referenceHandler *handler.ReferenceHandler,
	auditLogHandler *handler.AuditLogHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		patientHandler:    patientHandler,
		referenceHandler:  referenceHandler,
		auditLogHandler:   auditLogHandler,
		loggingMiddleware: loggingMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

// Setup registers every route and wraps the router in the logging and CORS
// middleware. The wrap sits outside mux so preflights and 404/405 responses
// also carry CORS headers.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.GetPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Reference data
	api.HandleFunc("/rooms", r.referenceHandler.GetRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms", r.referenceHandler.CreateRoom).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}", r.referenceHandler.GetRoom).Methods(http.MethodGet)
	api.HandleFunc("/specializations", r.referenceHandler.GetSpecializations).Methods(http.MethodGet)
	api.HandleFunc("/specializations", r.referenceHandler.CreateSpecialization).Methods(http.MethodPost)
	api.HandleFunc("/specializations/{id}", r.referenceHandler.GetSpecialization).Methods(http.MethodGet)
	api.HandleFunc("/sections", r.referenceHandler.GetSections).Methods(http.MethodGet)
	api.HandleFunc("/sections", r.referenceHandler.CreateSection).Methods(http.MethodPost)
	api.HandleFunc("/sections/{id}", r.referenceHandler.GetSection).Methods(http.MethodGet)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
