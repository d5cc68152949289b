package services

import (
	"context"

	"hospitalflow/models"
	"hospitalflow/repositories"
)

type ServiceService struct {
	repository *repositories.ServiceRepository
}

func NewServiceService(repository *repositories.ServiceRepository) *ServiceService {
	return &ServiceService{repository: repository}
}

func (s *ServiceService) Create(ctx context.Context, service *models.Service) error {
	return s.repository.Create(ctx, service)
}

func (s *ServiceService) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ServiceService) GetAll(ctx context.Context) ([]models.Service, error) {
	return s.repository.GetAll(ctx)
}

func (s *ServiceService) Update(ctx context.Context, service *models.Service) error {
	return s.repository.Update(ctx, service)
}

func (s *ServiceService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
