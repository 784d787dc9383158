package usecase

import (
	"context"
	"errors"
	"time"

	"pet-clinic-api/internal/converter"
	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"
	"pet-clinic-api/internal/domain/repository"
	"pet-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceCustomer      = errors.New("customer not found")
	ErrInvalidMoneyValue    = errors.New("invalid money value")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type InvoiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	GetAll(ctx context.Context) (*dto.InvoiceListResponse, error)
	GetByCustomer(ctx context.Context, customerID uuid.UUID) (*dto.InvoiceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	invoiceRepo   repository.InvoiceRepository
	customerRepo  repository.CustomerRepository
	invoiceNumber *service.InvoiceNumberService
}

func NewInvoiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	invoiceNumber *service.InvoiceNumberService,
) InvoiceUsecase {
	return &invoiceUsecase{
		db:            db,
		log:           log,
		invoiceRepo:   invoiceRepo,
		customerRepo:  customerRepo,
		invoiceNumber: invoiceNumber,
	}
}

// Create issues an invoice. The money breakdown is always computed here from
// the request inputs, and the invoice number comes from the daily sequence.
// A duplicate number (possible when the sequence falls back to random) is
// retried once with a fresh number before giving up.
func (u *invoiceUsecase) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	db := u.db.WithContext(ctx)

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, ErrInvoiceCustomer
	}

	customer, err := u.customerRepo.FindByID(db, customerID)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrInvoiceCustomer
	}

	servicePrice, err := decimal.NewFromString(req.ServicePrice)
	if err != nil || servicePrice.IsNegative() {
		return nil, ErrInvalidMoneyValue
	}
	additionalCharges, err := parseOptionalDecimal(req.AdditionalCharges)
	if err != nil || additionalCharges.IsNegative() {
		return nil, ErrInvalidMoneyValue
	}
	discount, err := parseOptionalDecimal(req.Discount)
	if err != nil || discount.IsNegative() {
		return nil, ErrInvalidMoneyValue
	}
	taxRate, err := parseOptionalDecimal(req.TaxRate)
	if err != nil || taxRate.IsNegative() {
		return nil, ErrInvalidMoneyValue
	}

	totals := ComputeInvoiceTotals(servicePrice, additionalCharges, discount, taxRate)
	issueDate := startOfDay(time.Now())

	invoice := &entity.Invoice{
		CustomerID:        customerID,
		ServicePrice:      servicePrice,
		AdditionalCharges: additionalCharges,
		Discount:          discount,
		TaxRate:           taxRate,
		TaxAmount:         totals.TaxAmount,
		TotalAmount:       totals.TotalAmount,
		IssueDate:         issueDate,
		PaymentStatus:     entity.PaymentStatusUnpaid,
		Notes:             req.Notes,
	}

	if invoice.AppointmentID, err = parseOptionalUUID(req.AppointmentID); err != nil {
		return nil, ErrInvoiceNotFound
	}
	if invoice.DoctorID, err = parseOptionalUUID(req.DoctorID); err != nil {
		return nil, ErrDoctorNotFound
	}
	if invoice.ServiceID, err = parseOptionalUUID(req.ServiceID); err != nil {
		return nil, ErrServiceNotFound
	}
	if invoice.PetID, err = parseOptionalUUID(req.PetID); err != nil {
		return nil, ErrPetNotFound
	}

	if req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		invoice.DueDate = &dueDate
	}

	for attempt := 0; ; attempt++ {
		invoice.InvoiceNumber = u.invoiceNumber.Next(ctx, issueDate)

		err = u.invoiceRepo.Create(db, invoice)
		if err == nil {
			break
		}
		if isDuplicateKeyError(err, "invoice_number") && attempt == 0 {
			u.log.Warnf("Invoice number collision on %s, retrying once", invoice.InvoiceNumber)
			continue
		}
		if isForeignKeyError(err, "") {
			return nil, ErrInvoiceNotFound
		}
		u.log.Warnf("Failed to create invoice: %+v", err)
		return nil, err
	}

	invoice.Customer = *customer
	return converter.InvoiceToResponse(invoice, time.Now()), nil
}

func (u *invoiceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return converter.InvoiceToResponse(invoice, time.Now()), nil
}

func (u *invoiceUsecase) GetAll(ctx context.Context) (*dto.InvoiceListResponse, error) {
	invoices, err := u.invoiceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list invoices: %+v", err)
		return nil, err
	}

	return &dto.InvoiceListResponse{
		Invoices: converter.InvoicesToResponses(invoices, time.Now()),
		Total:    len(invoices),
	}, nil
}

func (u *invoiceUsecase) GetByCustomer(ctx context.Context, customerID uuid.UUID) (*dto.InvoiceListResponse, error) {
	invoices, err := u.invoiceRepo.FindByCustomerID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to list invoices by customer: %+v", err)
		return nil, err
	}

	return &dto.InvoiceListResponse{
		Invoices: converter.InvoicesToResponses(invoices, time.Now()),
		Total:    len(invoices),
	}, nil
}

// Update recomputes the totals whenever any calculation input changes; a
// client can never set tax_amount or total_amount directly.
func (u *invoiceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	db := u.db.WithContext(ctx)

	invoice, err := u.invoiceRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	if req.ServicePrice != "" {
		price, err := decimal.NewFromString(req.ServicePrice)
		if err != nil || price.IsNegative() {
			return nil, ErrInvalidMoneyValue
		}
		invoice.ServicePrice = price
	}
	if req.AdditionalCharges != "" {
		charges, err := decimal.NewFromString(req.AdditionalCharges)
		if err != nil || charges.IsNegative() {
			return nil, ErrInvalidMoneyValue
		}
		invoice.AdditionalCharges = charges
	}
	if req.Discount != "" {
		discount, err := decimal.NewFromString(req.Discount)
		if err != nil || discount.IsNegative() {
			return nil, ErrInvalidMoneyValue
		}
		invoice.Discount = discount
	}
	if req.TaxRate != "" {
		taxRate, err := decimal.NewFromString(req.TaxRate)
		if err != nil || taxRate.IsNegative() {
			return nil, ErrInvalidMoneyValue
		}
		invoice.TaxRate = taxRate
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		invoice.DueDate = &dueDate
	}
	if req.PaymentStatus != "" {
		status := entity.PaymentStatus(req.PaymentStatus)
		if !status.IsValid() {
			return nil, ErrInvalidPaymentStatus
		}
		invoice.PaymentStatus = status
	}
	if req.Notes != "" {
		invoice.Notes = req.Notes
	}

	totals := ComputeInvoiceTotals(invoice.ServicePrice, invoice.AdditionalCharges, invoice.Discount, invoice.TaxRate)
	invoice.TaxAmount = totals.TaxAmount
	invoice.TotalAmount = totals.TotalAmount

	if err := u.invoiceRepo.Update(db, invoice); err != nil {
		u.log.Warnf("Failed to update invoice: %+v", err)
		return nil, err
	}

	return converter.InvoiceToResponse(invoice, time.Now()), nil
}

func (u *invoiceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := u.invoiceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete invoice: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
