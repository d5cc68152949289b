package services

import (
	"context"

	"hospitalflow/models"
	"hospitalflow/repositories"
)

type PricingService struct {
	repository *repositories.PricingRepository
}

func NewPricingService(repository *repositories.PricingRepository) *PricingService {
	return &PricingService{repository: repository}
}

func (s *PricingService) ResolvePrice(ctx context.Context, doctorID, serviceID string) (float64, error) {
	return s.repository.ResolvePrice(ctx, doctorID, serviceID)
}

func (s *PricingService) CreateMapping(ctx context.Context, mapping *models.DoctorService) error {
	return s.repository.CreateMapping(ctx, mapping)
}

func (s *PricingService) GetMappingByID(ctx context.Context, id string) (*models.DoctorService, error) {
	return s.repository.GetMappingByID(ctx, id)
}

func (s *PricingService) GetAllMappings(ctx context.Context) ([]models.DoctorService, error) {
	return s.repository.GetAllMappings(ctx)
}

func (s *PricingService) UpdateMapping(ctx context.Context, id string, customPrice *float64) (*models.DoctorService, error) {
	return s.repository.UpdateMapping(ctx, id, customPrice)
}

func (s *PricingService) DeleteMapping(ctx context.Context, id string) error {
	return s.repository.DeleteMapping(ctx, id)
}
