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
	PatientCacheExpiry = 24 * time.Hour
)

type PatientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache) *PatientRepository {
	return &PatientRepository{db: db, cache: cache}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if patient.ID == "" {
		patient.ID = newID("pat")
	}
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patients_cache")
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatient != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = r.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}
	return patients, nil
}

// Update applies only the named fields so a partial payload never clears
// fields it did not mention.
func (r *PatientRepository) Update(ctx context.Context, id string, update *models.PatientUpdate) (*models.Patient, error) {
	var patient *models.Patient
	err := withLock(ctx, fmt.Sprintf("patient_lock:%s", id), func() error {
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		update.Apply(existing)
		if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
			return fmt.Errorf("failed to update patient: %w", err)
		}
		patient = existing
		if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
			return fmt.Errorf("failed to delete patient cache: %w", err)
		}
		return r.cache.DeleteAll(ctx, "patients_cache")
	})
	return patient, err
}

func (r *PatientRepository) getPatientCacheKey(id string) string {
	return fmt.Sprintf("patient_cache:%s", id)
}
