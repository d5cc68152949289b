package services

import (
	"context"

	"hospitalflow/models"
	"hospitalflow/repositories"
)

type ServiceTypeService struct {
	repository *repositories.ServiceTypeRepository
}

func NewServiceTypeService(repository *repositories.ServiceTypeRepository) *ServiceTypeService {
	return &ServiceTypeService{repository: repository}
}

func (s *ServiceTypeService) Create(ctx context.Context, serviceType *models.ServiceType) error {
	return s.repository.Create(ctx, serviceType)
}

func (s *ServiceTypeService) GetByID(ctx context.Context, id string) (*models.ServiceType, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ServiceTypeService) GetAll(ctx context.Context) ([]models.ServiceType, error) {
	return s.repository.GetAll(ctx)
}

func (s *ServiceTypeService) Update(ctx context.Context, serviceType *models.ServiceType) error {
	return s.repository.Update(ctx, serviceType)
}

func (s *ServiceTypeService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
