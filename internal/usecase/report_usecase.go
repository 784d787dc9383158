package usecase

import (
	"context"
	"time"

	"pet-clinic-api/internal/converter"
	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"
	"pet-clinic-api/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const topClientsLimit = 10

// ReportUsecase aggregates in SQL. None of these endpoints ship raw rows to
// the client for counting there.
type ReportUsecase interface {
	DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	AppointmentStats(ctx context.Context) (*dto.AppointmentStatsResponse, error)
	AppointmentReport(ctx context.Context) (*dto.AppointmentReportResponse, error)
	EarningsReport(ctx context.Context) (*dto.EarningsReportResponse, error)
	ClientVisitReport(ctx context.Context) (*dto.ClientVisitReportResponse, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	customerRepo    repository.CustomerRepository
	petRepo         repository.PetRepository
	appointmentRepo repository.AppointmentRepository
	invoiceRepo     repository.InvoiceRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	petRepo repository.PetRepository,
	appointmentRepo repository.AppointmentRepository,
	invoiceRepo repository.InvoiceRepository,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		customerRepo:    customerRepo,
		petRepo:         petRepo,
		appointmentRepo: appointmentRepo,
		invoiceRepo:     invoiceRepo,
	}
}

func (u *reportUsecase) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	db := u.db.WithContext(ctx)

	totalUsers, err := u.userRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return nil, err
	}

	totalPets, err := u.petRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count pets: %+v", err)
		return nil, err
	}

	totalAppointments, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	today := startOfDay(time.Now())
	todayAppointments, err := u.appointmentRepo.CountOnDate(db, today)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}

	byStatus, err := u.appointmentRepo.CountByStatus(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}
	statusCounts := statusCountMap(byStatus)

	return &dto.DashboardStatsResponse{
		TotalUsers:            totalUsers,
		TotalPets:             totalPets,
		TotalAppointments:     totalAppointments,
		TodayAppointments:     todayAppointments,
		PendingAppointments:   statusCounts[string(entity.AppointmentStatusPending)],
		CompletedAppointments: statusCounts[string(entity.AppointmentStatusCompleted)],
	}, nil
}

func (u *reportUsecase) AppointmentStats(ctx context.Context) (*dto.AppointmentStatsResponse, error) {
	db := u.db.WithContext(ctx)

	total, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	byStatus, err := u.appointmentRepo.CountByStatus(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}
	statusCounts := statusCountMap(byStatus)

	return &dto.AppointmentStatsResponse{
		TotalAppointments:     total,
		PendingAppointments:   statusCounts[string(entity.AppointmentStatusPending)],
		ConfirmedAppointments: statusCounts[string(entity.AppointmentStatusConfirmed)],
		CompletedAppointments: statusCounts[string(entity.AppointmentStatusCompleted)],
		CancelledAppointments: statusCounts[string(entity.AppointmentStatusCancelled)],
	}, nil
}

func (u *reportUsecase) AppointmentReport(ctx context.Context) (*dto.AppointmentReportResponse, error) {
	db := u.db.WithContext(ctx)

	total, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	byStatus, err := u.appointmentRepo.CountByStatus(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}

	byDoctor, err := u.appointmentRepo.CountByDoctor(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments by doctor: %+v", err)
		return nil, err
	}

	byMonth, err := u.appointmentRepo.CountByMonth(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments by month: %+v", err)
		return nil, err
	}

	return &dto.AppointmentReportResponse{
		Total:    total,
		ByStatus: byStatus,
		ByDoctor: byDoctor,
		ByMonth:  byMonth,
	}, nil
}

func (u *reportUsecase) EarningsReport(ctx context.Context) (*dto.EarningsReportResponse, error) {
	db := u.db.WithContext(ctx)

	totalRevenue, err := u.invoiceRepo.SumTotal(db)
	if err != nil {
		u.log.Warnf("Failed to sum revenue: %+v", err)
		return nil, err
	}

	totalPaid, err := u.invoiceRepo.SumTotalByStatuses(db, []entity.PaymentStatus{entity.PaymentStatusPaid})
	if err != nil {
		u.log.Warnf("Failed to sum paid invoices: %+v", err)
		return nil, err
	}

	totalOutstanding, err := u.invoiceRepo.SumTotalByStatuses(db, []entity.PaymentStatus{
		entity.PaymentStatusUnpaid, entity.PaymentStatusPartiallyPaid, entity.PaymentStatusOverdue,
	})
	if err != nil {
		u.log.Warnf("Failed to sum outstanding invoices: %+v", err)
		return nil, err
	}

	invoiceCount, err := u.invoiceRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count invoices: %+v", err)
		return nil, err
	}

	average := decimal.Zero
	if invoiceCount > 0 {
		average = totalRevenue.Div(decimal.NewFromInt(invoiceCount)).Round(2)
	}

	byMonth, err := u.invoiceRepo.RevenueByMonth(db)
	if err != nil {
		u.log.Warnf("Failed to sum revenue by month: %+v", err)
		return nil, err
	}

	byDoctor, err := u.invoiceRepo.RevenueByDoctor(db)
	if err != nil {
		u.log.Warnf("Failed to sum revenue by doctor: %+v", err)
		return nil, err
	}

	byService, err := u.invoiceRepo.RevenueByService(db)
	if err != nil {
		u.log.Warnf("Failed to sum revenue by service: %+v", err)
		return nil, err
	}

	outstanding, err := u.invoiceRepo.FindOutstanding(db)
	if err != nil {
		u.log.Warnf("Failed to list outstanding invoices: %+v", err)
		return nil, err
	}

	return &dto.EarningsReportResponse{
		TotalRevenue:         totalRevenue,
		TotalPaid:            totalPaid,
		TotalOutstanding:     totalOutstanding,
		AverageInvoiceAmount: average,
		ByMonth:              byMonth,
		ByDoctor:             byDoctor,
		ByService:            byService,
		OutstandingInvoices:  converter.InvoicesToResponses(outstanding, time.Now()),
	}, nil
}

func (u *reportUsecase) ClientVisitReport(ctx context.Context) (*dto.ClientVisitReportResponse, error) {
	db := u.db.WithContext(ctx)

	totalClients, err := u.customerRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count clients: %+v", err)
		return nil, err
	}

	activeClients, err := u.appointmentRepo.CountDistinctClients(db)
	if err != nil {
		u.log.Warnf("Failed to count active clients: %+v", err)
		return nil, err
	}

	topClients, err := u.appointmentRepo.TopClients(db, topClientsLimit)
	if err != nil {
		u.log.Warnf("Failed to list top clients: %+v", err)
		return nil, err
	}

	return &dto.ClientVisitReportResponse{
		TotalClients:  totalClients,
		ActiveClients: activeClients,
		TopClients:    topClients,
	}, nil
}

func statusCountMap(rows []entity.StatusCount) map[string]int64 {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts
}
