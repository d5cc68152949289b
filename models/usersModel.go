package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User roles. Authentication is a static credential lookup; the role only
// scopes which dashboard a user sees and, for doctors, which visits they may
// mutate.
const (
	RoleAdmin     = "admin"
	RoleReception = "reception"
	RoleFinancial = "financial"
	RoleDoctor    = "doctor"
)

// User represents a staff login
type User struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Password  string    `gorm:"size:255;not null;column:password" json:"-"`
	Role      string    `gorm:"column:role;check:role IN ('admin', 'reception', 'financial', 'doctor');not null" json:"role"`
	DoctorID  *string   `gorm:"column:doctor_id" json:"doctor_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// SeedUsers inserts the static staff accounts into the database
func SeedUsers(db *gorm.DB, defaultPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	doctorID := "doc1"
	initialUsers := []User{
		{ID: "usr1", Username: "admin1", Name: "Admin User", Role: RoleAdmin},
		{ID: "usr2", Username: "reception1", Name: "Reception Staff", Role: RoleReception},
		{ID: "usr3", Username: "financial1", Name: "Financial Admin", Role: RoleFinancial},
		{ID: "usr4", Username: "doctor1", Name: "Dr. John Smith", Role: RoleDoctor, DoctorID: &doctorID},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, user := range initialUsers {
			user.Password = string(hashed)
			if err := tx.FirstOrCreate(&user, User{Username: user.Username}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SeedCatalog inserts the reference catalog: department tree, services,
// doctors, pricing overrides, and lab tests.
func SeedCatalog(db *gorm.DB) error {
	medical := "st1"
	diagnostic := "st5"
	price600 := 600.0
	price800 := 800.0
	serviceTypes := []ServiceType{
		{ID: "st1", Name: "Medical", Description: "Medical Services", ParentID: nil, Level: 0},
		{ID: "st2", Name: "Cardiology", Description: "Heart related services", ParentID: &medical, Level: 1},
		{ID: "st3", Name: "Neurology", Description: "Brain and nerve services", ParentID: &medical, Level: 1},
		{ID: "st4", Name: "Pediatrics", Description: "Child care services", ParentID: &medical, Level: 1},
		{ID: "st5", Name: "Diagnostic", Description: "Diagnostic Services", ParentID: nil, Level: 0},
		{ID: "st6", Name: "Laboratory", Description: "Lab tests", ParentID: &diagnostic, Level: 1},
	}
	services := []Service{
		{ID: "srv1", Name: "General Consultation", ServiceTypeID: "st2", BaseCost: 500, Description: "Basic checkup"},
		{ID: "srv2", Name: "ECG", ServiceTypeID: "st2", BaseCost: 300, Description: "Electrocardiogram"},
		{ID: "srv3", Name: "Neuro Consultation", ServiceTypeID: "st3", BaseCost: 700, Description: "Neurological consultation"},
		{ID: "srv4", Name: "Child Checkup", ServiceTypeID: "st4", BaseCost: 400, Description: "Pediatric consultation"},
	}
	doctors := []Doctor{
		{ID: "doc1", Name: "Dr. John Smith", Email: "john@hospital.com", Phone: "1234567890", ServiceTypeID: "st2", Specialization: "Cardiologist", Available: true},
		{ID: "doc2", Name: "Dr. Sarah Johnson", Email: "sarah@hospital.com", Phone: "1234567891", ServiceTypeID: "st3", Specialization: "Neurologist", Available: true},
		{ID: "doc3", Name: "Dr. Mike Williams", Email: "mike@hospital.com", Phone: "1234567892", ServiceTypeID: "st4", Specialization: "Pediatrician", Available: false},
	}
	doctorServices := []DoctorService{
		{ID: "ds1", DoctorID: "doc1", ServiceID: "srv1", CustomPrice: &price600},
		{ID: "ds2", DoctorID: "doc1", ServiceID: "srv2"},
		{ID: "ds3", DoctorID: "doc2", ServiceID: "srv3", CustomPrice: &price800},
	}
	labTests := []LabTest{
		{ID: "lab1", Name: "Complete Blood Count", Cost: 250, IsOutsourced: false},
		{ID: "lab2", Name: "Blood Sugar Test", Cost: 150, IsOutsourced: false},
		{ID: "lab3", Name: "MRI Scan", Cost: 5000, IsOutsourced: true},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, st := range serviceTypes {
			if err := tx.FirstOrCreate(&st, ServiceType{ID: st.ID}).Error; err != nil {
				return err
			}
		}
		for _, svc := range services {
			if err := tx.FirstOrCreate(&svc, Service{ID: svc.ID}).Error; err != nil {
				return err
			}
		}
		for _, doc := range doctors {
			if err := tx.FirstOrCreate(&doc, Doctor{ID: doc.ID}).Error; err != nil {
				return err
			}
		}
		for _, ds := range doctorServices {
			if err := tx.FirstOrCreate(&ds, DoctorService{ID: ds.ID}).Error; err != nil {
				return err
			}
		}
		for _, lt := range labTests {
			if err := tx.FirstOrCreate(&lt, LabTest{ID: lt.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
