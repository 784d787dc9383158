package http

import (
	"net/http"

	"pet-clinic-api/internal/delivery/http/handler"
	"pet-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	customerHandler     *handler.CustomerHandler
	petHandler          *handler.PetHandler
	doctorHandler       *handler.DoctorHandler
	serviceHandler      *handler.ServiceHandler
	appointmentHandler  *handler.AppointmentHandler
	invoiceHandler      *handler.InvoiceHandler
	contactHandler      *handler.ContactHandler
	notificationHandler *handler.NotificationHandler
	reportHandler       *handler.ReportHandler
	emailHandler        *handler.EmailHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	customerHandler *handler.CustomerHandler,
	petHandler *handler.PetHandler,
	doctorHandler *handler.DoctorHandler,
	serviceHandler *handler.ServiceHandler,
	appointmentHandler *handler.AppointmentHandler,
	invoiceHandler *handler.InvoiceHandler,
	contactHandler *handler.ContactHandler,
	notificationHandler *handler.NotificationHandler,
	reportHandler *handler.ReportHandler,
	emailHandler *handler.EmailHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		customerHandler:     customerHandler,
		petHandler:          petHandler,
		doctorHandler:       doctorHandler,
		serviceHandler:      serviceHandler,
		appointmentHandler:  appointmentHandler,
		invoiceHandler:      invoiceHandler,
		contactHandler:      contactHandler,
		notificationHandler: notificationHandler,
		reportHandler:       reportHandler,
		emailHandler:        emailHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/password-reset", r.authHandler.RequestPasswordReset).Methods(http.MethodPost)

	// Public contact surface
	api.HandleFunc("/contact-messages", r.contactHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/email/user-to-admin", r.emailHandler.SendUserToAdmin).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Authenticated routes (any logged-in user)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/services", r.serviceHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.GetByID).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}/appointments", r.appointmentHandler.GetByCustomer).Methods(http.MethodGet)

	protected.HandleFunc("/pets", r.petHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/pets/{id}", r.petHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/pets/{id}", r.petHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{ownerId}/pets", r.petHandler.GetByOwner).Methods(http.MethodGet)

	protected.HandleFunc("/customers/{customerId}/invoices", r.invoiceHandler.GetByCustomer).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Customer management
	admin.HandleFunc("/customers", r.customerHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/customers", r.customerHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{id}", r.customerHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{id}", r.customerHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/customers/{id}", r.customerHandler.Delete).Methods(http.MethodDelete)

	// Pet management
	admin.HandleFunc("/pets", r.petHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/pets/{id}", r.petHandler.Delete).Methods(http.MethodDelete)

	// Doctor management
	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	// Service catalog management
	admin.HandleFunc("/services", r.serviceHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.serviceHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.serviceHandler.Delete).Methods(http.MethodDelete)

	// Appointment management
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/today", r.appointmentHandler.GetToday).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Billing
	admin.HandleFunc("/invoices", r.invoiceHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/invoices", r.invoiceHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/invoices/{id}", r.invoiceHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/invoices/{id}", r.invoiceHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/invoices/{id}", r.invoiceHandler.Delete).Methods(http.MethodDelete)

	// Contact inbox
	admin.HandleFunc("/contact-messages", r.contactHandler.GetAll).Methods(http.MethodGet)

	// Notifications (synthesized)
	admin.HandleFunc("/notifications", r.notificationHandler.GetAll).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/reminders", r.notificationHandler.GetUpcomingReminders).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPut)

	// Reports
	admin.HandleFunc("/dashboard/stats", r.reportHandler.DashboardStats).Methods(http.MethodGet)
	admin.HandleFunc("/appointments-stats", r.reportHandler.AppointmentStats).Methods(http.MethodGet)
	admin.HandleFunc("/reports/appointments", r.reportHandler.AppointmentReport).Methods(http.MethodGet)
	admin.HandleFunc("/reports/earnings", r.reportHandler.EarningsReport).Methods(http.MethodGet)
	admin.HandleFunc("/reports/clients", r.reportHandler.ClientVisitReport).Methods(http.MethodGet)

	// Transactional email
	admin.HandleFunc("/email/test", r.emailHandler.SendTest).Methods(http.MethodPost)
	admin.HandleFunc("/email/appointment-confirmation", r.emailHandler.SendAppointmentConfirmation).Methods(http.MethodPost)
	admin.HandleFunc("/email/appointment-reminder", r.emailHandler.SendAppointmentReminder).Methods(http.MethodPost)
	admin.HandleFunc("/email/invoice-alert", r.emailHandler.SendInvoiceAlert).Methods(http.MethodPost)
	admin.HandleFunc("/email/welcome", r.emailHandler.SendWelcome).Methods(http.MethodPost)
	admin.HandleFunc("/email/password-reset", r.emailHandler.SendPasswordReset).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
