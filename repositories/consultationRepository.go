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
	ConsultationCacheExpiry = 12 * time.Hour
)

type ConsultationRepository struct {
	db      *gorm.DB
	cache   *cache.Cache
	pricing *PricingRepository
}

func NewConsultationRepository(db *gorm.DB, cache *cache.Cache, pricing *PricingRepository) *ConsultationRepository {
	return &ConsultationRepository{db: db, cache: cache, pricing: pricing}
}

// Open creates a consultation episode. The end date is derived from the
// start date plus the validity window; the department must be a non-root
// service type.
func (r *ConsultationRepository) Open(ctx context.Context, consultation *models.Consultation) error {
	if consultation.ID == "" {
		consultation.ID = newID("cons")
	}
	if consultation.ValidityValue < 1 {
		return fmt.Errorf("validity value must be at least 1: %w", models.ErrValidation)
	}
	if !consultation.ValidityType.Valid() {
		return fmt.Errorf("unknown validity type %q: %w", consultation.ValidityType, models.ErrValidation)
	}
	if err := r.checkDepartment(ctx, consultation.DepartmentID); err != nil {
		return err
	}
	if err := r.checkPatient(ctx, consultation.PatientID); err != nil {
		return err
	}

	endDate, err := models.ComputeEndDate(consultation.StartDate, consultation.ValidityType, consultation.ValidityValue)
	if err != nil {
		return fmt.Errorf("%v: %w", err, models.ErrValidation)
	}
	consultation.EndDate = endDate
	consultation.IsActive = true

	if err := r.db.WithContext(ctx).Create(consultation).Error; err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}
	return r.cache.DeleteAll(ctx, "consultation_cache:*")
}

// Book creates the consultation, its chargeable first visit, and the bill
// for the resolved doctor/service price in a single transaction. A failure
// partway leaves nothing behind.
func (r *ConsultationRepository) Book(ctx context.Context, req *models.BookingRequest) (*models.BookingResult, error) {
	doctor, err := r.getDoctor(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.Available {
		return nil, fmt.Errorf("doctor %s is not available for booking: %w", req.DoctorID, models.ErrValidation)
	}

	service, err := r.getService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	price, err := r.pricing.ResolvePrice(ctx, req.DoctorID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	consultation := &models.Consultation{
		PatientID:     req.PatientID,
		DepartmentID:  req.DepartmentID,
		ValidityType:  req.ValidityType,
		ValidityValue: req.ValidityValue,
		StartDate:     req.StartDate,
	}
	if consultation.ValidityValue < 1 {
		return nil, fmt.Errorf("validity value must be at least 1: %w", models.ErrValidation)
	}
	if !consultation.ValidityType.Valid() {
		return nil, fmt.Errorf("unknown validity type %q: %w", consultation.ValidityType, models.ErrValidation)
	}
	if err := r.checkDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}
	if err := r.checkPatient(ctx, req.PatientID); err != nil {
		return nil, err
	}
	endDate, err := models.ComputeEndDate(req.StartDate, req.ValidityType, req.ValidityValue)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, models.ErrValidation)
	}
	consultation.ID = newID("cons")
	consultation.EndDate = endDate
	consultation.IsActive = true

	// The first visit is always chargeable.
	visit := &models.Visit{
		ID:              newID("visit"),
		ConsultationID:  consultation.ID,
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          models.VisitPending,
		IsFirstVisit:    true,
		IsFree:          false,
	}

	visitID := visit.ID
	bill := &models.Bill{
		ID:        newID("bill"),
		PatientID: req.PatientID,
		VisitID:   &visitID,
		Items: []models.BillItem{
			{
				ID:     newID("item"),
				Type:   models.BillItemConsultation,
				Name:   service.Name,
				Amount: price,
			},
		},
		PaidAmount: 0,
		Status:     models.BillPending,
	}
	bill.TotalAmount = models.SumItems(bill.Items)

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(consultation).Error; err != nil {
			return fmt.Errorf("failed to create consultation: %w", err)
		}
		if err := tx.Create(visit).Error; err != nil {
			return fmt.Errorf("failed to create first visit: %w", err)
		}
		if err := tx.Create(bill).Error; err != nil {
			return fmt.Errorf("failed to create bill: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := r.cache.DeleteAll(ctx, "consultation_cache:*"); err != nil {
		log.Printf("Failed to invalidate consultation cache: %v", err)
	}
	return &models.BookingResult{Consultation: consultation, Visit: visit, Bill: bill}, nil
}

// GetByID recomputes the active flag against the current date on every read
// rather than relying on the stored snapshot.
func (r *ConsultationRepository) GetByID(ctx context.Context, id string) (*models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getConsultationCacheKey(id)
	cachedConsultation, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedConsultation != "" {
		var consultation models.Consultation
		if err := json.Unmarshal([]byte(cachedConsultation), &consultation); err == nil {
			consultation.IsActive = consultation.ActiveOn(time.Now())
			return &consultation, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get consultation from cache: %v", err)
	}

	var consultation models.Consultation
	err = r.db.WithContext(ctx).First(&consultation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("consultation %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	consultation.IsActive = consultation.ActiveOn(time.Now())

	consultationJSON, err := json.Marshal(consultation)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal consultation: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, consultationJSON, ConsultationCacheExpiry); err != nil {
		log.Printf("Failed to set consultation in cache: %v", err)
	}

	return &consultation, nil
}

func (r *ConsultationRepository) GetAll(ctx context.Context) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&consultations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all consultations: %w", err)
	}
	now := time.Now()
	for i := range consultations {
		consultations[i].IsActive = consultations[i].ActiveOn(now)
	}
	return consultations, nil
}

func (r *ConsultationRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Order("created_at DESC").Find(&consultations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get consultations for patient: %w", err)
	}
	now := time.Now()
	for i := range consultations {
		consultations[i].IsActive = consultations[i].ActiveOn(now)
	}
	return consultations, nil
}

// checkDepartment requires an existing non-root service type. Consultations
// are booked against departments, not top-level categories.
func (r *ConsultationRepository) checkDepartment(ctx context.Context, departmentID string) error {
	var department models.ServiceType
	err := r.db.WithContext(ctx).First(&department, "id = ?", departmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("department %s: %w", departmentID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to get department: %w", err)
	}
	if department.IsRoot() {
		return fmt.Errorf("department %s is a root category: %w", departmentID, models.ErrValidation)
	}
	return nil
}

func (r *ConsultationRepository) checkPatient(ctx context.Context, patientID string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", patientID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check patient: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("patient %s: %w", patientID, models.ErrNotFound)
	}
	return nil
}

func (r *ConsultationRepository) getDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
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

func (r *ConsultationRepository) getService(ctx context.Context, serviceID string) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", serviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service %s: %w", serviceID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

func (r *ConsultationRepository) getConsultationCacheKey(id string) string {
	return fmt.Sprintf("consultation_cache:%s", id)
}
