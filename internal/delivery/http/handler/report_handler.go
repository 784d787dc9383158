package handler

import (
	"net/http"

	"pet-clinic-api/internal/usecase"
	"pet-clinic-api/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

func (h *ReportHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportUsecase.DashboardStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

func (h *ReportHandler) AppointmentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportUsecase.AppointmentStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointment stats")
		return
	}

	response.Success(w, http.StatusOK, "Appointment stats retrieved successfully", stats)
}

func (h *ReportHandler) AppointmentReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.AppointmentReport(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointment report")
		return
	}

	response.Success(w, http.StatusOK, "Appointment report retrieved successfully", report)
}

func (h *ReportHandler) EarningsReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.EarningsReport(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get earnings report")
		return
	}

	response.Success(w, http.StatusOK, "Earnings report retrieved successfully", report)
}

func (h *ReportHandler) ClientVisitReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.ClientVisitReport(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get client visit report")
		return
	}

	response.Success(w, http.StatusOK, "Client visit report retrieved successfully", report)
}
