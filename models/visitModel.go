package models

import (
	"fmt"
	"time"
)

// VisitStatus is the workflow state of a visit.
type VisitStatus string

const (
	VisitPending    VisitStatus = "pending"
	VisitProcessing VisitStatus = "processing"
	VisitCompleted  VisitStatus = "completed"
)

// Valid reports whether the value is one of the closed set of states.
func (s VisitStatus) Valid() bool {
	switch s {
	case VisitPending, VisitProcessing, VisitCompleted:
		return true
	}
	return false
}

// CanAdvanceTo reports whether a single forward step from s to target is
// legal. The machine is pending -> processing -> completed; completed is
// terminal and skipping a step is not allowed.
func (s VisitStatus) CanAdvanceTo(target VisitStatus) bool {
	switch s {
	case VisitPending:
		return target == VisitProcessing
	case VisitProcessing:
		return target == VisitCompleted
	}
	return false
}

// Visit model. Exactly one consultation owns each visit; only status, notes,
// doctor ownership and the transfer markers change after creation.
type Visit struct {
	ID              string      `gorm:"primaryKey;column:id" json:"id"`
	ConsultationID  string      `gorm:"column:consultation_id;not null;index" json:"consultation_id"`
	PatientID       string      `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID        string      `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	AppointmentDate string      `gorm:"column:appointment_date;not null;index" json:"appointment_date"`
	AppointmentTime string      `gorm:"column:appointment_time;not null" json:"appointment_time"`
	Status          VisitStatus `gorm:"column:status;check:status IN ('pending', 'processing', 'completed');not null" json:"status"`
	IsFirstVisit    bool        `gorm:"column:is_first_visit;not null" json:"is_first_visit"`
	IsFree          bool        `gorm:"column:is_free;not null" json:"is_free"`
	Notes           string      `gorm:"column:notes" json:"notes"`
	TransferredFrom *string     `gorm:"column:transferred_from" json:"transferred_from,omitempty"`
	TransferredTo   *string     `gorm:"column:transferred_to" json:"transferred_to,omitempty"`
	CreatedAt       time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Visit) TableName() string {
	return "visit"
}

// CheckTransfer validates a reassignment to the target doctor. A nil target
// means the doctor does not exist. Completed visits are terminal and cannot
// move.
func (v *Visit) CheckTransfer(toDoctorID string, target *Doctor) error {
	if v.Status == VisitCompleted {
		return fmt.Errorf("completed visits cannot be transferred: %w", ErrInvalidTransfer)
	}
	if toDoctorID == v.DoctorID {
		return fmt.Errorf("visit is already assigned to doctor %s: %w", toDoctorID, ErrInvalidTransfer)
	}
	if target == nil {
		return fmt.Errorf("doctor %s does not exist: %w", toDoctorID, ErrInvalidTransfer)
	}
	if !target.Available {
		return fmt.Errorf("doctor %s is not available: %w", toDoctorID, ErrInvalidTransfer)
	}
	return nil
}

// ApplyTransfer reassigns the visit and restarts its workflow at pending.
// Only the most recent previous doctor is retained.
func (v *Visit) ApplyTransfer(toDoctorID string) {
	previous := v.DoctorID
	v.TransferredFrom = &previous
	v.TransferredTo = &toDoctorID
	v.DoctorID = toDoctorID
	v.Status = VisitPending
}
