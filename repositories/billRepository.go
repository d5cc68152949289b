package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"hospitalflow/cache"
	"hospitalflow/models"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	BillCacheExpiry = 12 * time.Hour
)

type BillRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewBillRepository(db *gorm.DB, cache *cache.Cache) *BillRepository {
	return &BillRepository{db: db, cache: cache}
}

// Create opens a bill from its line items. The total is the sum of item
// amounts; payment starts at zero.
func (r *BillRepository) Create(ctx context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = newID("bill")
	}
	if len(bill.Items) == 0 {
		return fmt.Errorf("bill requires at least one item: %w", models.ErrValidation)
	}
	for i := range bill.Items {
		item := &bill.Items[i]
		if item.ID == "" {
			item.ID = newID("item")
		}
		item.BillID = bill.ID
		if !item.Type.Valid() {
			return fmt.Errorf("unknown bill item type %q: %w", item.Type, models.ErrValidation)
		}
		if item.Amount < 0 {
			return fmt.Errorf("bill item amount must not be negative: %w", models.ErrValidation)
		}
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", bill.PatientID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check patient: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("patient %s: %w", bill.PatientID, models.ErrNotFound)
	}
	if bill.VisitID != nil {
		var visits int64
		if err := r.db.WithContext(ctx).Model(&models.Visit{}).Where("id = ?", *bill.VisitID).Count(&visits).Error; err != nil {
			return fmt.Errorf("failed to check visit: %w", err)
		}
		if visits == 0 {
			return fmt.Errorf("visit %s: %w", *bill.VisitID, models.ErrNotFound)
		}
	}

	bill.TotalAmount = models.SumItems(bill.Items)
	bill.PaidAmount = 0
	bill.Status = models.BillPending

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			return fmt.Errorf("failed to create bill: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, r.getBillCacheKey(bill.ID))
}

func (r *BillRepository) GetByID(ctx context.Context, id string) (*models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getBillCacheKey(id)
	cachedBill, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedBill != "" {
		var bill models.Bill
		if err := json.Unmarshal([]byte(cachedBill), &bill); err == nil {
			return &bill, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get bill from cache: %v", err)
	}

	bill, err := r.loadBill(ctx, id)
	if err != nil {
		return nil, err
	}

	billJSON, err := json.Marshal(bill)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bill: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, billJSON, BillCacheExpiry); err != nil {
		log.Printf("Failed to set bill in cache: %v", err)
	}

	return bill, nil
}

func (r *BillRepository) GetAll(ctx context.Context) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&bills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all bills: %w", err)
	}
	return bills, nil
}

func (r *BillRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.WithContext(ctx).Preload("Items").Where("patient_id = ?", patientID).
		Order("created_at DESC").Find(&bills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get bills for patient: %w", err)
	}
	return bills, nil
}

// ApplyPayment adds a partial payment and reclassifies the bill. The amount
// must be positive and must not exceed the outstanding balance; the paid
// amount never decreases.
func (r *BillRepository) ApplyPayment(ctx context.Context, id string, amount float64) (*models.Bill, error) {
	var bill *models.Bill
	err := withLock(ctx, fmt.Sprintf("bill_lock:%s", id), func() error {
		existing, err := r.loadBill(ctx, id)
		if err != nil {
			return err
		}
		if err := existing.ApplyPayment(amount); err != nil {
			return err
		}
		if err := r.db.WithContext(ctx).Model(&models.Bill{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"paid_amount": existing.PaidAmount,
				"status":      existing.Status,
			}).Error; err != nil {
			return fmt.Errorf("failed to apply payment: %w", err)
		}
		bill = existing
		return r.cache.Delete(ctx, r.getBillCacheKey(id))
	})
	return bill, err
}

func (r *BillRepository) loadBill(ctx context.Context, id string) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.WithContext(ctx).Preload("Items").First(&bill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bill %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return &bill, nil
}

func (r *BillRepository) getBillCacheKey(id string) string {
	return fmt.Sprintf("bill_cache:%s", id)
}
