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
	DoctorCacheExpiry = 24 * time.Hour
)

type DoctorRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDoctorRepository(db *gorm.DB, cache *cache.Cache) *DoctorRepository {
	return &DoctorRepository{db: db, cache: cache}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if doctor.ID == "" {
		doctor.ID = newID("doc")
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ServiceType{}).Where("id = ?", doctor.ServiceTypeID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check department: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("department %s: %w", doctor.ServiceTypeID, models.ErrNotFound)
	}
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return r.cache.DeleteAll(ctx, "doctor_cache:*")
}

func (r *DoctorRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getDoctorCacheKey(id)
	cachedDoctor, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedDoctor != "" {
		var doctor models.Doctor
		if err := json.Unmarshal([]byte(cachedDoctor), &doctor); err == nil {
			return &doctor, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get doctor from cache: %v", err)
	}

	var doctor models.Doctor
	err = r.db.WithContext(ctx).First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	doctorJSON, err := json.Marshal(doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal doctor: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, doctorJSON, DoctorCacheExpiry); err != nil {
		log.Printf("Failed to set doctor in cache: %v", err)
	}

	return &doctor, nil
}

func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.WithContext(ctx).Order("name").Find(&doctors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all doctors: %w", err)
	}
	return doctors, nil
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	return withLock(ctx, fmt.Sprintf("doctor_lock:%s", doctor.ID), func() error {
		if _, err := r.GetByID(ctx, doctor.ID); err != nil {
			return err
		}
		if err := r.db.WithContext(ctx).Save(doctor).Error; err != nil {
			return fmt.Errorf("failed to update doctor: %w", err)
		}
		return r.cache.Delete(ctx, r.getDoctorCacheKey(doctor.ID))
	})
}

func (r *DoctorRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("doctor_lock:%s", id), func() error {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		var visits int64
		if err := r.db.WithContext(ctx).Model(&models.Visit{}).Where("doctor_id = ?", id).Count(&visits).Error; err != nil {
			return fmt.Errorf("failed to count visits: %w", err)
		}
		if visits > 0 {
			return errors.New("doctor still has visits attached")
		}
		if err := r.db.WithContext(ctx).Delete(&models.Doctor{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete doctor: %w", err)
		}
		return r.cache.Delete(ctx, r.getDoctorCacheKey(id))
	})
}

func (r *DoctorRepository) getDoctorCacheKey(id string) string {
	return fmt.Sprintf("doctor_cache:%s", id)
}
