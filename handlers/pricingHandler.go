package handlers

import (
	"hospitalflow/middlewares"
	"hospitalflow/models"
	"hospitalflow/services"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	service *services.PricingService
}

func NewPricingHandler(service *services.PricingService) *PricingHandler {
	return &PricingHandler{service: service}
}

// ResolvePrice answers the effective price a doctor charges for a service:
// the custom override when one exists, the service base cost otherwise.
func (h *PricingHandler) ResolvePrice(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	serviceID := c.Query("service_id")
	if doctorID == "" || serviceID == "" {
		c.JSON(400, gin.H{"error": "doctor_id and service_id query parameters are required"})
		return
	}
	price, err := h.service.ResolvePrice(c.Request.Context(), doctorID, serviceID)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, gin.H{"doctor_id": doctorID, "service_id": serviceID, "price": price})
}

func (h *PricingHandler) CreateMapping(c *gin.Context) {
	var mapping models.DoctorService
	if err := c.ShouldBindJSON(&mapping); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateMapping(c.Request.Context(), &mapping); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, mapping)
}

func (h *PricingHandler) GetMappingByID(c *gin.Context) {
	mapping, err := h.service.GetMappingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, mapping)
}

func (h *PricingHandler) GetAllMappings(c *gin.Context) {
	mappings, err := h.service.GetAllMappings(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, mappings)
}

func (h *PricingHandler) UpdateMapping(c *gin.Context) {
	var body struct {
		CustomPrice *float64 `json:"custom_price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	mapping, err := h.service.UpdateMapping(c.Request.Context(), c.Param("id"), body.CustomPrice)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, mapping)
}

func (h *PricingHandler) DeleteMapping(c *gin.Context) {
	if err := h.service.DeleteMapping(c.Request.Context(), c.Param("id")); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Mapping deleted"})
}
