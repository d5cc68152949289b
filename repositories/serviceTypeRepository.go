package repositories

import (
	"context"
	"errors"
	"fmt"

	"hospitalflow/models"

	"gorm.io/gorm"
)

type ServiceTypeRepository struct {
	db *gorm.DB
}

func NewServiceTypeRepository(db *gorm.DB) *ServiceTypeRepository {
	return &ServiceTypeRepository{db: db}
}

func (r *ServiceTypeRepository) Create(ctx context.Context, serviceType *models.ServiceType) error {
	if serviceType.ID == "" {
		serviceType.ID = newID("st")
	}
	level, err := r.levelFor(ctx, serviceType.ParentID)
	if err != nil {
		return err
	}
	serviceType.Level = level

	if err := r.db.WithContext(ctx).Create(serviceType).Error; err != nil {
		return fmt.Errorf("failed to create service type: %w", err)
	}
	return nil
}

func (r *ServiceTypeRepository) GetByID(ctx context.Context, id string) (*models.ServiceType, error) {
	var serviceType models.ServiceType
	err := r.db.WithContext(ctx).First(&serviceType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service type %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service type: %w", err)
	}
	return &serviceType, nil
}

func (r *ServiceTypeRepository) GetAll(ctx context.Context) ([]models.ServiceType, error) {
	var serviceTypes []models.ServiceType
	err := r.db.WithContext(ctx).Order("level, name").Find(&serviceTypes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all service types: %w", err)
	}
	return serviceTypes, nil
}

func (r *ServiceTypeRepository) Update(ctx context.Context, serviceType *models.ServiceType) error {
	return withLock(ctx, fmt.Sprintf("service_type_lock:%s", serviceType.ID), func() error {
		existing, err := r.GetByID(ctx, serviceType.ID)
		if err != nil {
			return err
		}
		if err := r.checkReparent(ctx, existing.ID, serviceType.ParentID); err != nil {
			return err
		}
		level, err := r.levelFor(ctx, serviceType.ParentID)
		if err != nil {
			return err
		}
		serviceType.Level = level
		if err := r.db.WithContext(ctx).Save(serviceType).Error; err != nil {
			return fmt.Errorf("failed to update service type: %w", err)
		}
		return nil
	})
}

func (r *ServiceTypeRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("service_type_lock:%s", id), func() error {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		var children int64
		if err := r.db.WithContext(ctx).Model(&models.ServiceType{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return fmt.Errorf("failed to count child service types: %w", err)
		}
		if children > 0 {
			return errors.New("service type still has child categories")
		}
		var services int64
		if err := r.db.WithContext(ctx).Model(&models.Service{}).Where("service_type_id = ?", id).Count(&services).Error; err != nil {
			return fmt.Errorf("failed to count services: %w", err)
		}
		if services > 0 {
			return errors.New("service type still has services attached")
		}
		var doctors int64
		if err := r.db.WithContext(ctx).Model(&models.Doctor{}).Where("service_type_id = ?", id).Count(&doctors).Error; err != nil {
			return fmt.Errorf("failed to count doctors: %w", err)
		}
		if doctors > 0 {
			return errors.New("service type still has doctors attached")
		}
		if err := r.db.WithContext(ctx).Delete(&models.ServiceType{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete service type: %w", err)
		}
		return nil
	})
}

// levelFor returns the depth for a node under the given parent: 0 for roots,
// parent level + 1 otherwise. The parent must exist.
func (r *ServiceTypeRepository) levelFor(ctx context.Context, parentID *string) (int, error) {
	if parentID == nil {
		return 0, nil
	}
	parent, err := r.GetByID(ctx, *parentID)
	if err != nil {
		return 0, err
	}
	return parent.Level + 1, nil
}

// checkReparent walks up from the proposed parent and rejects the move if it
// would make the node its own ancestor.
func (r *ServiceTypeRepository) checkReparent(ctx context.Context, id string, parentID *string) error {
	seen := map[string]bool{}
	for parentID != nil {
		if *parentID == id {
			return errors.New("service type cannot become its own ancestor")
		}
		if seen[*parentID] {
			return errors.New("service type tree contains a cycle")
		}
		seen[*parentID] = true
		parent, err := r.GetByID(ctx, *parentID)
		if err != nil {
			return err
		}
		parentID = parent.ParentID
	}
	return nil
}
