package repositories

import (
	"context"
	"errors"
	"fmt"

	"hospitalflow/models"

	"gorm.io/gorm"
)

// PricingRepository manages doctor-service price overrides and resolves the
// chargeable amount for a doctor/service pair.
type PricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

// ResolvePrice returns the applicable charge for the pair: the doctor's
// custom price when a mapping with one exists, otherwise the service base
// cost. A missing doctor mapping is not an error; a missing service is.
func (r *PricingRepository) ResolvePrice(ctx context.Context, doctorID, serviceID string) (float64, error) {
	var service models.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", serviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("service %s: %w", serviceID, models.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to get service: %w", err)
	}

	var mapping models.DoctorService
	err = r.db.WithContext(ctx).First(&mapping, "doctor_id = ? AND service_id = ?", doctorID, serviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PriceFor(nil, &service), nil
		}
		return 0, fmt.Errorf("failed to get doctor service mapping: %w", err)
	}
	return models.PriceFor(&mapping, &service), nil
}

func (r *PricingRepository) CreateMapping(ctx context.Context, mapping *models.DoctorService) error {
	if mapping.ID == "" {
		mapping.ID = newID("ds")
	}
	var doctorCount int64
	if err := r.db.WithContext(ctx).Model(&models.Doctor{}).Where("id = ?", mapping.DoctorID).Count(&doctorCount).Error; err != nil {
		return fmt.Errorf("failed to check doctor: %w", err)
	}
	if doctorCount == 0 {
		return fmt.Errorf("doctor %s: %w", mapping.DoctorID, models.ErrNotFound)
	}
	var serviceCount int64
	if err := r.db.WithContext(ctx).Model(&models.Service{}).Where("id = ?", mapping.ServiceID).Count(&serviceCount).Error; err != nil {
		return fmt.Errorf("failed to check service: %w", err)
	}
	if serviceCount == 0 {
		return fmt.Errorf("service %s: %w", mapping.ServiceID, models.ErrNotFound)
	}
	var existing int64
	if err := r.db.WithContext(ctx).Model(&models.DoctorService{}).
		Where("doctor_id = ? AND service_id = ?", mapping.DoctorID, mapping.ServiceID).
		Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check existing mapping: %w", err)
	}
	if existing > 0 {
		return errors.New("doctor service mapping already exists for this pair")
	}
	if err := r.db.WithContext(ctx).Create(mapping).Error; err != nil {
		return fmt.Errorf("failed to create doctor service mapping: %w", err)
	}
	return nil
}

func (r *PricingRepository) GetMappingByID(ctx context.Context, id string) (*models.DoctorService, error) {
	var mapping models.DoctorService
	err := r.db.WithContext(ctx).First(&mapping, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor service mapping %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get doctor service mapping: %w", err)
	}
	return &mapping, nil
}

func (r *PricingRepository) GetAllMappings(ctx context.Context) ([]models.DoctorService, error) {
	var mappings []models.DoctorService
	err := r.db.WithContext(ctx).Order("doctor_id, service_id").Find(&mappings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all doctor service mappings: %w", err)
	}
	return mappings, nil
}

// UpdateMapping changes only the custom price; the pair itself is fixed at
// creation.
func (r *PricingRepository) UpdateMapping(ctx context.Context, id string, customPrice *float64) (*models.DoctorService, error) {
	var mapping *models.DoctorService
	err := withLock(ctx, fmt.Sprintf("doctor_service_lock:%s", id), func() error {
		existing, err := r.GetMappingByID(ctx, id)
		if err != nil {
			return err
		}
		existing.CustomPrice = customPrice
		if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
			return fmt.Errorf("failed to update doctor service mapping: %w", err)
		}
		mapping = existing
		return nil
	})
	return mapping, err
}

func (r *PricingRepository) DeleteMapping(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("doctor_service_lock:%s", id), func() error {
		if _, err := r.GetMappingByID(ctx, id); err != nil {
			return err
		}
		if err := r.db.WithContext(ctx).Delete(&models.DoctorService{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete doctor service mapping: %w", err)
		}
		return nil
	})
}
