package services

import (
	"context"

	"hospitalflow/models"
	"hospitalflow/repositories"
)

type LabService struct {
	repository *repositories.LabRepository
}

func NewLabService(repository *repositories.LabRepository) *LabService {
	return &LabService{repository: repository}
}

func (s *LabService) CreateTest(ctx context.Context, test *models.LabTest) error {
	return s.repository.CreateTest(ctx, test)
}

func (s *LabService) GetTestByID(ctx context.Context, id string) (*models.LabTest, error) {
	return s.repository.GetTestByID(ctx, id)
}

func (s *LabService) GetAllTests(ctx context.Context) ([]models.LabTest, error) {
	return s.repository.GetAllTests(ctx)
}

func (s *LabService) CreateOrder(ctx context.Context, order *models.LabOrder) error {
	return s.repository.CreateOrder(ctx, order)
}

func (s *LabService) GetOrderByID(ctx context.Context, id string) (*models.LabOrder, error) {
	return s.repository.GetOrderByID(ctx, id)
}

func (s *LabService) GetAllOrders(ctx context.Context) ([]models.LabOrder, error) {
	return s.repository.GetAllOrders(ctx)
}

func (s *LabService) GetOrdersByVisit(ctx context.Context, visitID string) ([]models.LabOrder, error) {
	return s.repository.GetOrdersByVisit(ctx, visitID)
}

func (s *LabService) UpdateOrderStatus(ctx context.Context, id string, status models.LabOrderStatus) (*models.LabOrder, error) {
	return s.repository.UpdateOrderStatus(ctx, id, status)
}
