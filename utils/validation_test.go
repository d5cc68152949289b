package utils

import (
	"testing"

	"hospitalflow/models"

	"github.com/stretchr/testify/assert"
)

func validBookingRequest() models.BookingRequest {
	return models.BookingRequest{
		PatientID:       "pat-1",
		DepartmentID:    "st2",
		ValidityType:    models.ValidityWeeks,
		ValidityValue:   2,
		StartDate:       "2025-11-15",
		DoctorID:        "doc1",
		ServiceID:       "srv1",
		AppointmentDate: "2025-11-15",
		AppointmentTime: "10:30",
	}
}

func TestValidateBookingData(t *testing.T) {
	assert.NoError(t, ValidateBookingData(validBookingRequest()))
}

func TestValidateBookingDataRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingRequest)
	}{
		{"missing patient", func(r *models.BookingRequest) { r.PatientID = "" }},
		{"missing department", func(r *models.BookingRequest) { r.DepartmentID = "" }},
		{"unknown validity type", func(r *models.BookingRequest) { r.ValidityType = "years" }},
		{"zero validity value", func(r *models.BookingRequest) { r.ValidityValue = 0 }},
		{"malformed start date", func(r *models.BookingRequest) { r.StartDate = "15/11/2025" }},
		{"malformed appointment date", func(r *models.BookingRequest) { r.AppointmentDate = "tomorrow" }},
		{"missing appointment time", func(r *models.BookingRequest) { r.AppointmentTime = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)
			assert.Error(t, ValidateBookingData(req))
		})
	}
}

func TestValidatePatientData(t *testing.T) {
	patient := models.Patient{Name: "John Doe", Age: 30, Gender: "Male", Email: "john@example.com"}
	assert.NoError(t, ValidatePatientData(patient))

	patient.Gender = "Unknown"
	assert.Error(t, ValidatePatientData(patient))

	patient.Gender = "Male"
	patient.Name = ""
	assert.Error(t, ValidatePatientData(patient))

	patient.Name = "John Doe"
	patient.Email = "not-an-email"
	assert.Error(t, ValidatePatientData(patient))
}

func TestValidateVisitData(t *testing.T) {
	visit := models.Visit{
		ConsultationID:  "cons-1",
		DoctorID:        "doc1",
		AppointmentDate: "2025-11-20",
		AppointmentTime: "09:00",
	}
	assert.NoError(t, ValidateVisitData(visit))

	visit.ConsultationID = ""
	assert.Error(t, ValidateVisitData(visit))
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.True(t, CheckPassword(hashed, "s3cret-pass"))
	assert.False(t, CheckPassword(hashed, "wrong-pass"))
}
