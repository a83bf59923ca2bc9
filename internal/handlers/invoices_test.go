package handlers

import (
	"strings"
	"testing"
	"time"
)

func TestComputeInvoiceTotals(t *testing.T) {
	items := []InvoiceItemRequest{
		{Description: "Cleaning", Quantity: 1, UnitPrice: 80},
		{Description: "Filling", Quantity: 2, UnitPrice: 120.50},
	}

	subtotal, tax, total := computeInvoiceTotals(items)
	if subtotal != 321 {
		t.Errorf("subtotal = %v, want 321", subtotal)
	}
	if tax != 32.10 {
		t.Errorf("tax = %v, want 32.10", tax)
	}
	if total != 353.10 {
		t.Errorf("total = %v, want 353.10", total)
	}
}

func TestComputeInvoiceTotalsRounding(t *testing.T) {
	items := []InvoiceItemRequest{
		{Description: "X-ray", Quantity: 3, UnitPrice: 33.33},
	}

	subtotal, tax, total := computeInvoiceTotals(items)
	if subtotal != 99.99 {
		t.Errorf("subtotal = %v, want 99.99", subtotal)
	}
	// 10% of 99.99 is 9.999, rounded to the nearest cent.
	if tax != 10.00 {
		t.Errorf("tax = %v, want 10.00", tax)
	}
	if total != 109.99 {
		t.Errorf("total = %v, want 109.99", total)
	}
}

func TestComputeInvoiceTotalsEmpty(t *testing.T) {
	subtotal, tax, total := computeInvoiceTotals(nil)
	if subtotal != 0 || tax != 0 || total != 0 {
		t.Errorf("got %v/%v/%v, want all zero", subtotal, tax, total)
	}
}

func TestNewInvoiceNumber(t *testing.T) {
	now := time.UnixMilli(1750000000000)
	got := newInvoiceNumber(now)
	if got != "INV-1750000000000" {
		t.Errorf("newInvoiceNumber = %q, want INV-1750000000000", got)
	}
	if !strings.HasPrefix(got, "INV-") {
		t.Errorf("invoice number %q missing INV- prefix", got)
	}
}
