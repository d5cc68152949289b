package models

import (
	"time"
)

// ServiceType model. Departments form a parent-pointer tree; roots have a
// null parent and level 0.
type ServiceType struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name;not null;index" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	ParentID    *string   `gorm:"column:parent_id;index" json:"parent_id"`
	Level       int       `gorm:"column:level;not null" json:"level"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Services    []Service `gorm:"foreignKey:ServiceTypeID;references:ID" json:"-"`
	Doctors     []Doctor  `gorm:"foreignKey:ServiceTypeID;references:ID" json:"-"`
}

func (ServiceType) TableName() string {
	return "service_type"
}

// IsRoot reports whether the node is a top-level category. Consultations may
// only be opened against non-root (department) nodes.
func (st *ServiceType) IsRoot() bool {
	return st.ParentID == nil
}

// Service model
type Service struct {
	ID            string    `gorm:"primaryKey;column:id" json:"id"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	ServiceTypeID string    `gorm:"column:service_type_id;not null;index" json:"service_type_id"`
	BaseCost      float64   `gorm:"column:base_cost;not null;check:base_cost >= 0" json:"base_cost"`
	Description   string    `gorm:"column:description" json:"description"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Service) TableName() string {
	return "service"
}

// Doctor model
type Doctor struct {
	ID             string    `gorm:"primaryKey;column:id" json:"id"`
	Name           string    `gorm:"column:name;not null;index" json:"name"`
	Email          string    `gorm:"column:email" json:"email"`
	Phone          string    `gorm:"column:phone" json:"phone"`
	ServiceTypeID  string    `gorm:"column:service_type_id;not null;index" json:"service_type_id"`
	Specialization string    `gorm:"column:specialization" json:"specialization"`
	Available      bool      `gorm:"column:available;not null" json:"available"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Visits         []Visit   `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// DoctorService maps a doctor to a service with an optional price override.
// At most one mapping may exist per (doctor, service) pair.
type DoctorService struct {
	ID          string   `gorm:"primaryKey;column:id" json:"id"`
	DoctorID    string   `gorm:"column:doctor_id;not null;uniqueIndex:idx_doctor_service" json:"doctor_id"`
	ServiceID   string   `gorm:"column:service_id;not null;uniqueIndex:idx_doctor_service" json:"service_id"`
	CustomPrice *float64 `gorm:"column:custom_price;check:custom_price >= 0" json:"custom_price,omitempty"`
	Doctor      Doctor   `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	Service     Service  `gorm:"foreignKey:ServiceID;references:ID" json:"-"`
}

func (DoctorService) TableName() string {
	return "doctor_service"
}

// PriceFor returns the chargeable amount for a service given an optional
// doctor mapping. A mapping without a custom price falls through to the
// service base cost.
func PriceFor(mapping *DoctorService, service *Service) float64 {
	if mapping != nil && mapping.CustomPrice != nil {
		return *mapping.CustomPrice
	}
	return service.BaseCost
}
