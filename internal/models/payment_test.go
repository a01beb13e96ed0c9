package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBackfillFillsGaps(t *testing.T) {
	now := time.Now().UTC()
	p := Payment{ID: bson.NewObjectID()}
	p.Backfill(now)

	if p.TxRef != "unknown-"+p.ID.Hex() {
		t.Errorf("TxRef = %q", p.TxRef)
	}
	if p.Currency != "USD" || p.Email != "unknown@example.com" {
		t.Errorf("defaults = %q %q", p.Currency, p.Email)
	}
	if p.FirstName != "Unknown" || p.LastName != "User" {
		t.Errorf("names = %q %q", p.FirstName, p.LastName)
	}
	if p.Status != PaymentPending {
		t.Errorf("Status = %q", p.Status)
	}
	if p.PaymentDate == nil || !p.PaymentDate.Equal(now) {
		t.Errorf("PaymentDate = %v", p.PaymentDate)
	}
}

func TestBackfillKeepsExistingValues(t *testing.T) {
	when := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := Payment{
		TxRef:       "tx-1",
		Currency:    "EUR",
		Email:       "payer@x.dev",
		FirstName:   "Pay",
		LastName:    "Er",
		Status:      PaymentSuccess,
		PaymentDate: &when,
	}
	p.Backfill(time.Now().UTC())

	if p.TxRef != "tx-1" || p.Currency != "EUR" || p.Status != PaymentSuccess {
		t.Errorf("existing values changed: %+v", p)
	}
	if !p.PaymentDate.Equal(when) {
		t.Errorf("PaymentDate changed: %v", p.PaymentDate)
	}
}
