package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ValidityType is the unit of a consultation's validity window.
type ValidityType string

const (
	ValidityDays   ValidityType = "days"
	ValidityWeeks  ValidityType = "weeks"
	ValidityMonths ValidityType = "months"
)

// Valid reports whether the value is one of the closed set of units.
func (v ValidityType) Valid() bool {
	switch v {
	case ValidityDays, ValidityWeeks, ValidityMonths:
		return true
	}
	return false
}

// AddTo advances start by value units. Months increment calendar months and
// clamp the day-of-month to the last day of the target month, so Jan 31 plus
// one month lands on Feb 28/29 rather than rolling into March.
func (v ValidityType) AddTo(start time.Time, value int) time.Time {
	switch v {
	case ValidityDays:
		return start.AddDate(0, 0, value)
	case ValidityWeeks:
		return start.AddDate(0, 0, value*7)
	case ValidityMonths:
		year, month, day := start.Date()
		first := time.Date(year, month+time.Month(value), 1, 0, 0, 0, 0, start.Location())
		last := first.AddDate(0, 1, -1).Day()
		if day > last {
			day = last
		}
		return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, start.Location())
	}
	return start
}

// Consultation model. A patient's time-bounded engagement with a department:
// the first visit is chargeable, follow-ups inside [StartDate, EndDate] are
// free.
type Consultation struct {
	ID            string       `gorm:"primaryKey;column:id" json:"id"`
	PatientID     string       `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DepartmentID  string       `gorm:"column:department_id;not null;index" json:"department_id"`
	ValidityType  ValidityType `gorm:"column:validity_type;check:validity_type IN ('days', 'weeks', 'months');not null" json:"validity_type"`
	ValidityValue int          `gorm:"column:validity_value;not null;check:validity_value >= 1" json:"validity_value"`
	StartDate     string       `gorm:"column:start_date;not null" json:"start_date"`
	EndDate       string       `gorm:"column:end_date;not null" json:"end_date"`
	IsActive      bool         `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt     time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Visits        []Visit      `gorm:"foreignKey:ConsultationID;references:ID" json:"-"`
}

func (Consultation) TableName() string {
	return "consultation"
}

// BookingRequest is a reception booking: one consultation, its first visit,
// and the bill for the resolved doctor/service price, created atomically.
type BookingRequest struct {
	PatientID       string       `json:"patient_id"`
	DepartmentID    string       `json:"department_id"`
	ValidityType    ValidityType `json:"validity_type"`
	ValidityValue   int          `json:"validity_value"`
	StartDate       string       `json:"start_date"`
	DoctorID        string       `json:"doctor_id"`
	ServiceID       string       `json:"service_id"`
	AppointmentDate string       `json:"appointment_date"`
	AppointmentTime string       `json:"appointment_time"`
}

// BookingResult is the trio a booking creates.
type BookingResult struct {
	Consultation *Consultation `json:"consultation"`
	Visit        *Visit        `json:"visit"`
	Bill         *Bill         `json:"bill"`
}

// ComputeEndDate derives the validity window end from the start date and the
// validity unit/value. Deterministic for a given input.
func ComputeEndDate(startDate string, validityType ValidityType, validityValue int) (string, error) {
	if !validityType.Valid() {
		return "", fmt.Errorf("unknown validity type %q", validityType)
	}
	if validityValue < 1 {
		return "", fmt.Errorf("validity value must be at least 1, got %d", validityValue)
	}
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return "", fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	return validityType.AddTo(start, validityValue).Format(DateLayout), nil
}

// WindowContains reports whether the given appointment date falls inside the
// consultation's validity window, bounds inclusive.
func (c *Consultation) WindowContains(date string) (bool, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}
	start, err := time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return false, fmt.Errorf("invalid consultation start date %q: %w", c.StartDate, err)
	}
	end, err := time.Parse(DateLayout, c.EndDate)
	if err != nil {
		return false, fmt.Errorf("invalid consultation end date %q: %w", c.EndDate, err)
	}
	return !d.Before(start) && !d.After(end), nil
}

// ActiveOn reports whether the validity window has not yet lapsed at the
// given instant. Active status is computed on read; the stored flag is only
// a snapshot.
func (c *Consultation) ActiveOn(now time.Time) bool {
	end, err := time.Parse(DateLayout, c.EndDate)
	if err != nil {
		return false
	}
	today, err := time.Parse(DateLayout, now.Format(DateLayout))
	if err != nil {
		return false
	}
	return !end.Before(today)
}
