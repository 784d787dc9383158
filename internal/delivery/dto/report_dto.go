package dto

import (
	"pet-clinic-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type DashboardStatsResponse struct {
	TotalUsers            int64 `json:"total_users"`
	TotalPets             int64 `json:"total_pets"`
	TotalAppointments     int64 `json:"total_appointments"`
	TodayAppointments     int64 `json:"today_appointments"`
	PendingAppointments   int64 `json:"pending_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
}

type AppointmentStatsResponse struct {
	TotalAppointments     int64 `json:"total_appointments"`
	PendingAppointments   int64 `json:"pending_appointments"`
	ConfirmedAppointments int64 `json:"confirmed_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	CancelledAppointments int64 `json:"cancelled_appointments"`
}

type AppointmentReportResponse struct {
	Total    int64                `json:"total"`
	ByStatus []entity.StatusCount `json:"by_status"`
	ByDoctor []entity.DoctorCount `json:"by_doctor"`
	ByMonth  []entity.MonthCount  `json:"by_month"`
}

type EarningsReportResponse struct {
	TotalRevenue         decimal.Decimal         `json:"total_revenue"`
	TotalPaid            decimal.Decimal         `json:"total_paid"`
	TotalOutstanding     decimal.Decimal         `json:"total_outstanding"`
	AverageInvoiceAmount decimal.Decimal         `json:"average_invoice_amount"`
	ByMonth              []entity.MonthRevenue   `json:"by_month"`
	ByDoctor             []entity.DoctorRevenue  `json:"by_doctor"`
	ByService            []entity.ServiceRevenue `json:"by_service"`
	OutstandingInvoices  []InvoiceResponse       `json:"outstanding_invoices"`
}

type ClientVisitReportResponse struct {
	TotalClients  int64              `json:"total_clients"`
	ActiveClients int64              `json:"active_clients"`
	TopClients    []entity.TopClient `json:"top_clients"`
}
