package models

import (
	"time"
)

// LabOrderStatus tracks a lab order through its lifecycle.
type LabOrderStatus string

const (
	LabOrdered         LabOrderStatus = "ordered"
	LabSampleCollected LabOrderStatus = "sample-collected"
	LabCompleted       LabOrderStatus = "completed"
)

// Valid reports whether the value is one of the closed set of states.
func (s LabOrderStatus) Valid() bool {
	switch s {
	case LabOrdered, LabSampleCollected, LabCompleted:
		return true
	}
	return false
}

// LabTest model
type LabTest struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"column:name;not null;index" json:"name"`
	Cost         float64   `gorm:"column:cost;not null;check:cost >= 0" json:"cost"`
	IsOutsourced bool      `gorm:"column:is_outsourced;not null" json:"is_outsourced"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LabTest) TableName() string {
	return "lab_test"
}

// LabOrder model. References an existing lab test and visit.
type LabOrder struct {
	ID        string         `gorm:"primaryKey;column:id" json:"id"`
	PatientID string         `gorm:"column:patient_id;not null;index" json:"patient_id"`
	VisitID   string         `gorm:"column:visit_id;not null;index" json:"visit_id"`
	DoctorID  string         `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	LabTestID string         `gorm:"column:lab_test_id;not null;index" json:"lab_test_id"`
	Status    LabOrderStatus `gorm:"column:status;check:status IN ('ordered', 'sample-collected', 'completed');not null" json:"status"`
	OrderedAt time.Time      `gorm:"column:ordered_at;autoCreateTime" json:"ordered_at"`
	LabTest   LabTest        `gorm:"foreignKey:LabTestID;references:ID" json:"-"`
	Visit     Visit          `gorm:"foreignKey:VisitID;references:ID" json:"-"`
}

func (LabOrder) TableName() string {
	return "lab_order"
}
