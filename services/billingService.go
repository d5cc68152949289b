package services

import (
	"context"

	"hospitalflow/models"
	"hospitalflow/repositories"
)

type BillingService struct {
	repository *repositories.BillRepository
}

func NewBillingService(repository *repositories.BillRepository) *BillingService {
	return &BillingService{repository: repository}
}

func (s *BillingService) Create(ctx context.Context, bill *models.Bill) error {
	return s.repository.Create(ctx, bill)
}

func (s *BillingService) GetByID(ctx context.Context, id string) (*models.Bill, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *BillingService) GetAll(ctx context.Context) ([]models.Bill, error) {
	return s.repository.GetAll(ctx)
}

func (s *BillingService) GetByPatient(ctx context.Context, patientID string) ([]models.Bill, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *BillingService) ApplyPayment(ctx context.Context, id string, amount float64) (*models.Bill, error) {
	return s.repository.ApplyPayment(ctx, id, amount)
}
