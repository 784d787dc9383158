package usecase

import "github.com/shopspring/decimal"

// InvoiceTotals is the server-computed money breakdown of an invoice
type InvoiceTotals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// ComputeInvoiceTotals derives the invoice totals from its inputs:
//
//	subtotal   = service_price + additional_charges - discount
//	tax_amount = subtotal * tax_rate / 100
//	total      = subtotal + tax_amount
//
// Amounts are rounded to cents; whatever total a client sent is ignored.
func ComputeInvoiceTotals(servicePrice, additionalCharges, discount, taxRate decimal.Decimal) InvoiceTotals {
	subtotal := servicePrice.Add(additionalCharges).Sub(discount)
	taxAmount := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
	total := subtotal.Add(taxAmount).Round(2)

	return InvoiceTotals{
		Subtotal:    subtotal.Round(2),
		TaxAmount:   taxAmount,
		TotalAmount: total,
	}
}
