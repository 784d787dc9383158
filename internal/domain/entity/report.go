package entity

import "github.com/shopspring/decimal"

// Aggregation rows produced by SQL-side grouping. The original system shipped
// whole tables to the browser and grouped there; these keep grouping in the
// storage layer.

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DoctorCount struct {
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Count      int64  `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

type MonthRevenue struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
}

type DoctorRevenue struct {
	DoctorID   string          `json:"doctor_id"`
	DoctorName string          `json:"doctor_name"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type ServiceRevenue struct {
	ServiceID   string          `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type TopClient struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	VisitCount   int64  `json:"visit_count"`
}
