package http

import (
	"net/http"

	"healthcareplus/internal/delivery/http/handler"
	"healthcareplus/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	appointmentHandler    *handler.AppointmentHandler
	doctorHandler         *handler.DoctorHandler
	patientHandler        *handler.PatientHandler
	prescriptionHandler   *handler.PrescriptionHandler
	paymentHandler        *handler.PaymentHandler
	specializationHandler *handler.SpecializationHandler
	adminHandler          *handler.AdminHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	paymentHandler *handler.PaymentHandler,
	specializationHandler *handler.SpecializationHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		appointmentHandler:    appointmentHandler,
		doctorHandler:         doctorHandler,
		patientHandler:        patientHandler,
		prescriptionHandler:   prescriptionHandler,
		paymentHandler:        paymentHandler,
		specializationHandler: specializationHandler,
		adminHandler:          adminHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login/patient", r.authHandler.LoginPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login/doctor", r.authHandler.LoginDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login/staff", r.authHandler.LoginStaff).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Public browse routes
	api.HandleFunc("/specializations", r.specializationHandler.GetAllSpecializations).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.GetBookableDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/availability", r.appointmentHandler.CheckAvailability).Methods(http.MethodGet)

	// Patient portal
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	patient.HandleFunc("/appointments/paid", r.appointmentHandler.BookPaid).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	patient.HandleFunc("/appointments/{appointmentId}/prescription", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	patient.HandleFunc("/prescriptions", r.prescriptionHandler.GetMyPrescriptions).Methods(http.MethodGet)
	patient.HandleFunc("/payments/order", r.paymentHandler.CreateOrder).Methods(http.MethodPost)

	// Doctor portal
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)
	doctor.HandleFunc("/appointments/{appointmentId}/prescription", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	doctor.HandleFunc("/appointments/{appointmentId}/prescription", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	doctor.HandleFunc("/prescriptions", r.prescriptionHandler.GetWrittenPrescriptions).Methods(http.MethodGet)

	// Receptionist portal
	receptionist := api.PathPrefix("/receptionist").Subrouter()
	receptionist.Use(r.authMiddleware.Authenticate)
	receptionist.Use(middleware.RequireStaff)
	receptionist.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	receptionist.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	receptionist.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	receptionist.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	receptionist.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	receptionist.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	receptionist.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	receptionist.HandleFunc("/appointments/{id}", r.appointmentHandler.Edit).Methods(http.MethodPut)
	receptionist.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)
	receptionist.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	// Admin portal
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/unverified", r.doctorHandler.GetUnverifiedDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}/verify", r.doctorHandler.VerifyDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}/reject", r.doctorHandler.RejectDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.Edit).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{appointmentId}/payment", r.paymentHandler.GetPaymentByAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/payments", r.paymentHandler.GetAllPayments).Methods(http.MethodGet)
	admin.HandleFunc("/specializations", r.specializationHandler.CreateSpecialization).Methods(http.MethodPost)
	admin.HandleFunc("/specializations/{id}", r.specializationHandler.GetSpecialization).Methods(http.MethodGet)
	admin.HandleFunc("/specializations/{id}", r.specializationHandler.UpdateSpecialization).Methods(http.MethodPut)
	admin.HandleFunc("/specializations/{id}", r.specializationHandler.DeleteSpecialization).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.adminHandler.GetAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/mail-settings", r.adminHandler.GetMailSettings).Methods(http.MethodGet)
	admin.HandleFunc("/mail-settings", r.adminHandler.UpdateMailSettings).Methods(http.MethodPut)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
