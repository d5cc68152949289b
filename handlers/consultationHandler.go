package handlers

import (
	"hospitalflow/middlewares"
	"hospitalflow/models"
	"hospitalflow/services"
	"hospitalflow/utils"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	service *services.ConsultationService
}

func NewConsultationHandler(service *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

// OpenConsultation starts a consultation episode without booking a visit.
// The end date is derived server-side from the validity unit and value.
func (h *ConsultationHandler) OpenConsultation(c *gin.Context) {
	var consultation models.Consultation
	if err := c.ShouldBindJSON(&consultation); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Open(c.Request.Context(), &consultation); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, consultation)
}

// BookConsultation is the reception entry point: it creates the consultation,
// its first visit, and the bill at the resolved price in a single transaction.
func (h *ConsultationHandler) BookConsultation(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateBookingData(req); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	result, err := h.service.Book(c.Request.Context(), &req)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, result)
}

func (h *ConsultationHandler) GetConsultationByID(c *gin.Context) {
	consultation, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, consultation)
}

func (h *ConsultationHandler) GetAllConsultations(c *gin.Context) {
	consultations, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, consultations)
}

func (h *ConsultationHandler) GetConsultationsByPatient(c *gin.Context) {
	consultations, err := h.service.GetByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, consultations)
}
