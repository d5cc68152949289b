package handlers

import (
	"hospitalflow/middlewares"
	"hospitalflow/models"
	"hospitalflow/services"
	"hospitalflow/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidatePatientData(patient); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	if err := h.service.Create(c.Request.Context(), &patient); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, patients)
}

// UpdatePatient applies a partial update; only the fields present in the
// request body change.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var update models.PatientUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	patient, err := h.service.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, patient)
}
