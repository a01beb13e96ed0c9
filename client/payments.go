package client

import (
	"context"
	"net/http"
	"time"

	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
)

type PaymentService struct {
	c *Client
}

func (s *PaymentService) List(ctx context.Context, p ListParams) ([]models.Payment, *dto.Pagination, error) {
	var payments []models.Payment
	page, err := s.c.do(ctx, http.MethodGet, "/api/payments", p.values(), nil, &payments)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	for i := range payments {
		payments[i].Backfill(now)
	}
	return payments, page, nil
}

// Get accepts either a document ID or a tx_ref.
func (s *PaymentService) Get(ctx context.Context, key string) (*models.Payment, error) {
	var payment models.Payment
	if _, err := s.c.do(ctx, http.MethodGet, "/api/payments/"+key, nil, nil, &payment); err != nil {
		return nil, err
	}
	payment.Backfill(time.Now().UTC())
	return &payment, nil
}

func (s *PaymentService) Create(ctx context.Context, req dto.CreatePaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	if _, err := s.c.do(ctx, http.MethodPost, "/api/payments", nil, req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) Update(ctx context.Context, key string, req dto.UpdatePaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	if _, err := s.c.do(ctx, http.MethodPatch, "/api/payments/"+key, nil, req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) Delete(ctx context.Context, key string) error {
	_, err := s.c.do(ctx, http.MethodDelete, "/api/payments/"+key, nil, nil, nil)
	return err
}

func (s *PaymentService) Metrics(ctx context.Context, p ListParams) (*dto.PaymentMetrics, error) {
	var metrics dto.PaymentMetrics
	if _, err := s.c.do(ctx, http.MethodGet, "/api/payments/metrics", p.values(), nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}
