package repositories

import (
	"context"
	"errors"
	"fmt"

	"hospitalflow/models"

	"gorm.io/gorm"
)

type LabRepository struct {
	db *gorm.DB
}

func NewLabRepository(db *gorm.DB) *LabRepository {
	return &LabRepository{db: db}
}

func (r *LabRepository) CreateTest(ctx context.Context, test *models.LabTest) error {
	if test.ID == "" {
		test.ID = newID("lab")
	}
	if test.Cost < 0 {
		return fmt.Errorf("lab test cost must not be negative: %w", models.ErrValidation)
	}
	if err := r.db.WithContext(ctx).Create(test).Error; err != nil {
		return fmt.Errorf("failed to create lab test: %w", err)
	}
	return nil
}

func (r *LabRepository) GetTestByID(ctx context.Context, id string) (*models.LabTest, error) {
	var test models.LabTest
	err := r.db.WithContext(ctx).First(&test, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lab test %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get lab test: %w", err)
	}
	return &test, nil
}

func (r *LabRepository) GetAllTests(ctx context.Context) ([]models.LabTest, error) {
	var tests []models.LabTest
	err := r.db.WithContext(ctx).Order("name").Find(&tests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all lab tests: %w", err)
	}
	return tests, nil
}

// CreateOrder records a lab order against an existing visit and test.
func (r *LabRepository) CreateOrder(ctx context.Context, order *models.LabOrder) error {
	if order.ID == "" {
		order.ID = newID("lo")
	}
	if order.Status == "" {
		order.Status = models.LabOrdered
	}
	if !order.Status.Valid() {
		return fmt.Errorf("unknown lab order status %q: %w", order.Status, models.ErrValidation)
	}

	if _, err := r.GetTestByID(ctx, order.LabTestID); err != nil {
		return err
	}
	var visit models.Visit
	err := r.db.WithContext(ctx).First(&visit, "id = ?", order.VisitID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("visit %s: %w", order.VisitID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to get visit: %w", err)
	}
	if order.PatientID == "" {
		order.PatientID = visit.PatientID
	}
	if order.DoctorID == "" {
		order.DoctorID = visit.DoctorID
	}

	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create lab order: %w", err)
	}
	return nil
}

func (r *LabRepository) GetOrderByID(ctx context.Context, id string) (*models.LabOrder, error) {
	var order models.LabOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lab order %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get lab order: %w", err)
	}
	return &order, nil
}

func (r *LabRepository) GetAllOrders(ctx context.Context) ([]models.LabOrder, error) {
	var orders []models.LabOrder
	err := r.db.WithContext(ctx).Order("ordered_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all lab orders: %w", err)
	}
	return orders, nil
}

func (r *LabRepository) GetOrdersByVisit(ctx context.Context, visitID string) ([]models.LabOrder, error) {
	var orders []models.LabOrder
	err := r.db.WithContext(ctx).Where("visit_id = ?", visitID).Order("ordered_at").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get lab orders for visit: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to another state in the closed set.
func (r *LabRepository) UpdateOrderStatus(ctx context.Context, id string, status models.LabOrderStatus) (*models.LabOrder, error) {
	var order *models.LabOrder
	err := withLock(ctx, fmt.Sprintf("lab_order_lock:%s", id), func() error {
		existing, err := r.GetOrderByID(ctx, id)
		if err != nil {
			return err
		}
		if !status.Valid() {
			return fmt.Errorf("unknown lab order status %q: %w", status, models.ErrValidation)
		}
		existing.Status = status
		if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
			return fmt.Errorf("failed to update lab order status: %w", err)
		}
		order = existing
		return nil
	})
	return order, err
}
