package handlers

import (
	"hospitalflow/middlewares"
	"hospitalflow/models"
	"hospitalflow/services"
	"hospitalflow/utils"

	"github.com/gin-gonic/gin"
)

type VisitHandler struct {
	service *services.VisitService
}

func NewVisitHandler(service *services.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

// ownsVisit checks that a doctor account only mutates its own visits. Other
// roles pass through.
func (h *VisitHandler) ownsVisit(c *gin.Context, visitID string) bool {
	role, err := middlewares.ExtractUserRoleFromContext(c.Request.Context())
	if err != nil || role != models.RoleDoctor {
		return true
	}
	doctorID := middlewares.ExtractDoctorIDFromContext(c.Request.Context())
	visit, err := h.service.GetByID(c.Request.Context(), visitID)
	if err != nil {
		return false
	}
	return visit.DoctorID == doctorID
}

// CreateVisit books a follow-up visit under an existing consultation. The
// visit is free when its appointment date falls inside the consultation's
// validity window.
func (h *VisitHandler) CreateVisit(c *gin.Context) {
	var visit models.Visit
	if err := c.ShouldBindJSON(&visit); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateVisitData(visit); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	if err := h.service.Create(c.Request.Context(), &visit); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, visit)
}

func (h *VisitHandler) GetVisitByID(c *gin.Context) {
	visit, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, visit)
}

func (h *VisitHandler) GetAllVisits(c *gin.Context) {
	visits, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, visits)
}

func (h *VisitHandler) GetVisitsByDoctor(c *gin.Context) {
	visits, err := h.service.GetByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, visits)
}

func (h *VisitHandler) GetVisitsByConsultation(c *gin.Context) {
	visits, err := h.service.GetByConsultation(c.Request.Context(), c.Param("consultationId"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, visits)
}

// AdvanceVisitStatus moves a visit one step forward through
// pending -> processing -> completed.
func (h *VisitHandler) AdvanceVisitStatus(c *gin.Context) {
	var body struct {
		Status models.VisitStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if !h.ownsVisit(c, id) {
		c.JSON(403, gin.H{"error": "Forbidden: visit belongs to another doctor"})
		return
	}
	visit, err := h.service.AdvanceStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, visit)
}

func (h *VisitHandler) RecordVisitNotes(c *gin.Context) {
	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if !h.ownsVisit(c, id) {
		c.JSON(403, gin.H{"error": "Forbidden: visit belongs to another doctor"})
		return
	}
	visit, err := h.service.RecordNotes(c.Request.Context(), id, body.Notes)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, visit)
}

// TransferVisit reassigns a non-completed visit to another available doctor
// and resets its workflow status to pending.
func (h *VisitHandler) TransferVisit(c *gin.Context) {
	var body struct {
		ToDoctorID string `json:"to_doctor_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if body.ToDoctorID == "" {
		c.JSON(400, gin.H{"error": "to_doctor_id is required"})
		return
	}
	id := c.Param("id")
	if !h.ownsVisit(c, id) {
		c.JSON(403, gin.H{"error": "Forbidden: visit belongs to another doctor"})
		return
	}
	visit, err := h.service.Transfer(c.Request.Context(), id, body.ToDoctorID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, visit)
}
