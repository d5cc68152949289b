package utils

import (
	"log"

	"hospitalflow/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidatePatientData validates a new patient record using ozzo-validation.
func ValidatePatientData(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&patient.Age, validation.Min(0)),
		validation.Field(&patient.Gender, validation.Required, validation.In("Male", "Female", "Other")),
		validation.Field(&patient.Email, is.Email),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateDoctorData validates a new doctor record.
func ValidateDoctorData(doctor models.Doctor) error {
	err := validation.ValidateStruct(&doctor,
		validation.Field(&doctor.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&doctor.ServiceTypeID, validation.Required),
		validation.Field(&doctor.Email, is.Email),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateServiceData validates a new service record.
func ValidateServiceData(service models.Service) error {
	err := validation.ValidateStruct(&service,
		validation.Field(&service.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&service.ServiceTypeID, validation.Required),
		validation.Field(&service.BaseCost, validation.Min(0.0)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateBookingData validates a reception booking request before it
// reaches the workflow engine.
func ValidateBookingData(req models.BookingRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.PatientID, validation.Required),
		validation.Field(&req.DepartmentID, validation.Required),
		validation.Field(&req.ValidityType, validation.Required,
			validation.In(models.ValidityDays, models.ValidityWeeks, models.ValidityMonths)),
		validation.Field(&req.ValidityValue, validation.Required, validation.Min(1)),
		validation.Field(&req.StartDate, validation.Required, validation.Date(models.DateLayout)),
		validation.Field(&req.DoctorID, validation.Required),
		validation.Field(&req.ServiceID, validation.Required),
		validation.Field(&req.AppointmentDate, validation.Required, validation.Date(models.DateLayout)),
		validation.Field(&req.AppointmentTime, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateVisitData validates a follow-up visit request.
func ValidateVisitData(visit models.Visit) error {
	err := validation.ValidateStruct(&visit,
		validation.Field(&visit.ConsultationID, validation.Required),
		validation.Field(&visit.DoctorID, validation.Required),
		validation.Field(&visit.AppointmentDate, validation.Required, validation.Date(models.DateLayout)),
		validation.Field(&visit.AppointmentTime, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}
