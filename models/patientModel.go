package models

import (
	"time"
)

// Patient model
type Patient struct {
	ID             string         `gorm:"primaryKey;column:id" json:"id"`
	Name           string         `gorm:"column:name;not null;index" json:"name"`
	Age            int            `gorm:"column:age;not null;check:age >= 0" json:"age"`
	Gender         string         `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other');not null" json:"gender"`
	Phone          string         `gorm:"column:phone" json:"phone"`
	Email          string         `gorm:"column:email" json:"email"`
	Address        string         `gorm:"column:address" json:"address"`
	MedicalHistory string         `gorm:"column:medical_history" json:"medical_history"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Consultations  []Consultation `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Visits         []Visit        `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Bills          []Bill         `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// PatientUpdate carries the fields a patient update may change. Pointers
// distinguish "not provided" from a zero value so an update never clears a
// field it did not name.
type PatientUpdate struct {
	Name           *string `json:"name"`
	Age            *int    `json:"age"`
	Gender         *string `json:"gender"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
}

// Apply copies the provided fields onto the patient record.
func (u *PatientUpdate) Apply(p *Patient) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.MedicalHistory != nil {
		p.MedicalHistory = *u.MedicalHistory
	}
}
