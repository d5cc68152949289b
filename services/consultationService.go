package services

import (
	"context"

	"hospitalflow/models"
	"hospitalflow/repositories"
)

type ConsultationService struct {
	repository *repositories.ConsultationRepository
}

func NewConsultationService(repository *repositories.ConsultationRepository) *ConsultationService {
	return &ConsultationService{repository: repository}
}

func (s *ConsultationService) Open(ctx context.Context, consultation *models.Consultation) error {
	return s.repository.Open(ctx, consultation)
}

func (s *ConsultationService) Book(ctx context.Context, req *models.BookingRequest) (*models.BookingResult, error) {
	return s.repository.Book(ctx, req)
}

func (s *ConsultationService) GetByID(ctx context.Context, id string) (*models.Consultation, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ConsultationService) GetAll(ctx context.Context) ([]models.Consultation, error) {
	return s.repository.GetAll(ctx)
}

func (s *ConsultationService) GetByPatient(ctx context.Context, patientID string) ([]models.Consultation, error) {
	return s.repository.GetByPatient(ctx, patientID)
}
