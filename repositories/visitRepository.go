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
	VisitCacheExpiry = 12 * time.Hour
)

type VisitRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewVisitRepository(db *gorm.DB, cache *cache.Cache) *VisitRepository {
	return &VisitRepository{db: db, cache: cache}
}

// Create records a follow-up visit against an existing consultation. The
// visit is free only when its appointment date falls inside the owning
// consultation's validity window; visits booked after the window are
// chargeable again.
func (r *VisitRepository) Create(ctx context.Context, visit *models.Visit) error {
	if visit.ID == "" {
		visit.ID = newID("visit")
	}

	var consultation models.Consultation
	err := r.db.WithContext(ctx).First(&consultation, "id = ?", visit.ConsultationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("consultation %s: %w", visit.ConsultationID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to get consultation: %w", err)
	}
	if visit.PatientID == "" {
		visit.PatientID = consultation.PatientID
	}
	if visit.PatientID != consultation.PatientID {
		return fmt.Errorf("visit patient does not match consultation patient: %w", models.ErrValidation)
	}

	doctor, err := r.getDoctor(ctx, visit.DoctorID)
	if err != nil {
		return err
	}
	if !doctor.Available {
		return fmt.Errorf("doctor %s is not available for booking: %w", visit.DoctorID, models.ErrValidation)
	}

	free, err := consultation.WindowContains(visit.AppointmentDate)
	if err != nil {
		return fmt.Errorf("%v: %w", err, models.ErrValidation)
	}
	visit.IsFirstVisit = false
	visit.IsFree = free
	visit.Status = models.VisitPending
	visit.TransferredFrom = nil
	visit.TransferredTo = nil

	if err := r.db.WithContext(ctx).Create(visit).Error; err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}
	return r.cache.Delete(ctx, r.getVisitCacheKey(visit.ID))
}

func (r *VisitRepository) GetByID(ctx context.Context, id string) (*models.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getVisitCacheKey(id)
	cachedVisit, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedVisit != "" {
		var visit models.Visit
		if err := json.Unmarshal([]byte(cachedVisit), &visit); err == nil {
			return &visit, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get visit from cache: %v", err)
	}

	var visit models.Visit
	err = r.db.WithContext(ctx).First(&visit, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("visit %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}

	visitJSON, err := json.Marshal(visit)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal visit: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, visitJSON, VisitCacheExpiry); err != nil {
		log.Printf("Failed to set visit in cache: %v", err)
	}

	return &visit, nil
}

func (r *VisitRepository) GetAll(ctx context.Context) ([]models.Visit, error) {
	var visits []models.Visit
	err := r.db.WithContext(ctx).Order("appointment_date DESC, appointment_time DESC").Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all visits: %w", err)
	}
	return visits, nil
}

func (r *VisitRepository) GetByDoctor(ctx context.Context, doctorID string) ([]models.Visit, error) {
	var visits []models.Visit
	err := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC, appointment_time DESC").Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get visits for doctor: %w", err)
	}
	return visits, nil
}

func (r *VisitRepository) GetByConsultation(ctx context.Context, consultationID string) ([]models.Visit, error) {
	var visits []models.Visit
	err := r.db.WithContext(ctx).Where("consultation_id = ?", consultationID).
		Order("created_at").Find(&visits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get visits for consultation: %w", err)
	}
	return visits, nil
}

// AdvanceStatus moves the visit one step along pending -> processing ->
// completed. Any other requested transition is rejected and leaves the
// record unchanged.
func (r *VisitRepository) AdvanceStatus(ctx context.Context, id string, target models.VisitStatus) (*models.Visit, error) {
	var visit *models.Visit
	err := withLock(ctx, fmt.Sprintf("visit_lock:%s", id), func() error {
		existing, err := r.loadVisit(ctx, id)
		if err != nil {
			return err
		}
		if !target.Valid() {
			return fmt.Errorf("unknown visit status %q: %w", target, models.ErrValidation)
		}
		if !existing.Status.CanAdvanceTo(target) {
			return fmt.Errorf("cannot move visit from %s to %s: %w", existing.Status, target, models.ErrInvalidTransition)
		}
		existing.Status = target
		if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
			return fmt.Errorf("failed to update visit status: %w", err)
		}
		visit = existing
		return r.cache.Delete(ctx, r.getVisitCacheKey(id))
	})
	return visit, err
}

// RecordNotes overwrites the clinical notes. Permitted in any state.
func (r *VisitRepository) RecordNotes(ctx context.Context, id string, notes string) (*models.Visit, error) {
	var visit *models.Visit
	err := withLock(ctx, fmt.Sprintf("visit_lock:%s", id), func() error {
		existing, err := r.loadVisit(ctx, id)
		if err != nil {
			return err
		}
		existing.Notes = notes
		if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
			return fmt.Errorf("failed to update visit notes: %w", err)
		}
		visit = existing
		return r.cache.Delete(ctx, r.getVisitCacheKey(id))
	})
	return visit, err
}

// Transfer reassigns an in-progress visit to another doctor and restarts its
// workflow. Only the most recent previous doctor is retained.
func (r *VisitRepository) Transfer(ctx context.Context, id string, toDoctorID string) (*models.Visit, error) {
	var visit *models.Visit
	err := withLock(ctx, fmt.Sprintf("visit_lock:%s", id), func() error {
		existing, err := r.loadVisit(ctx, id)
		if err != nil {
			return err
		}
		var target *models.Doctor
		var doctor models.Doctor
		err = r.db.WithContext(ctx).First(&doctor, "id = ?", toDoctorID).Error
		switch {
		case err == nil:
			target = &doctor
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to get doctor: %w", err)
		}

		if err := existing.CheckTransfer(toDoctorID, target); err != nil {
			return err
		}
		existing.ApplyTransfer(toDoctorID)
		if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
			return fmt.Errorf("failed to transfer visit: %w", err)
		}
		visit = existing
		return r.cache.Delete(ctx, r.getVisitCacheKey(id))
	})
	return visit, err
}

func (r *VisitRepository) loadVisit(ctx context.Context, id string) (*models.Visit, error) {
	var visit models.Visit
	err := r.db.WithContext(ctx).First(&visit, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("visit %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	return &visit, nil
}

func (r *VisitRepository) getDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).First(&doctor, "id = ?", doctorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor %s: %w", doctorID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *VisitRepository) getVisitCacheKey(id string) string {
	return fmt.Sprintf("visit_cache:%s", id)
}
