package repositories

import (
	"context"
	"errors"
	"fmt"

	"hospitalflow/models"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if service.ID == "" {
		service.ID = newID("srv")
	}
	if err := r.checkServiceType(ctx, service.ServiceTypeID); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).Order("name").Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all services: %w", err)
	}
	return services, nil
}

func (r *ServiceRepository) Update(ctx context.Context, service *models.Service) error {
	return withLock(ctx, fmt.Sprintf("service_lock:%s", service.ID), func() error {
		if _, err := r.GetByID(ctx, service.ID); err != nil {
			return err
		}
		if err := r.checkServiceType(ctx, service.ServiceTypeID); err != nil {
			return err
		}
		if err := r.db.WithContext(ctx).Save(service).Error; err != nil {
			return fmt.Errorf("failed to update service: %w", err)
		}
		return nil
	})
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("service_lock:%s", id), func() error {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		if err := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete service: %w", err)
		}
		return nil
	})
}

func (r *ServiceRepository) checkServiceType(ctx context.Context, serviceTypeID string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ServiceType{}).Where("id = ?", serviceTypeID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check service type: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("service type %s: %w", serviceTypeID, models.ErrNotFound)
	}
	return nil
}
