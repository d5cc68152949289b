package services

import (
	"context"

	"hospitalflow/models"
	"hospitalflow/repositories"
)

type VisitService struct {
	repository *repositories.VisitRepository
}

func NewVisitService(repository *repositories.VisitRepository) *VisitService {
	return &VisitService{repository: repository}
}

func (s *VisitService) Create(ctx context.Context, visit *models.Visit) error {
	return s.repository.Create(ctx, visit)
}

func (s *VisitService) GetByID(ctx context.Context, id string) (*models.Visit, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *VisitService) GetAll(ctx context.Context) ([]models.Visit, error) {
	return s.repository.GetAll(ctx)
}

func (s *VisitService) GetByDoctor(ctx context.Context, doctorID string) ([]models.Visit, error) {
	return s.repository.GetByDoctor(ctx, doctorID)
}

func (s *VisitService) GetByConsultation(ctx context.Context, consultationID string) ([]models.Visit, error) {
	return s.repository.GetByConsultation(ctx, consultationID)
}

func (s *VisitService) AdvanceStatus(ctx context.Context, id string, target models.VisitStatus) (*models.Visit, error) {
	return s.repository.AdvanceStatus(ctx, id, target)
}

func (s *VisitService) RecordNotes(ctx context.Context, id string, notes string) (*models.Visit, error) {
	return s.repository.RecordNotes(ctx, id, notes)
}

func (s *VisitService) Transfer(ctx context.Context, id string, toDoctorID string) (*models.Visit, error) {
	return s.repository.Transfer(ctx, id, toDoctorID)
}
