package handlers

import (
	"hospitalflow/middlewares"
	"hospitalflow/models"
	"hospitalflow/services"

	"github.com/gin-gonic/gin"
)

type ServiceTypeHandler struct {
	service *services.ServiceTypeService
}

func NewServiceTypeHandler(service *services.ServiceTypeService) *ServiceTypeHandler {
	return &ServiceTypeHandler{service: service}
}

func (h *ServiceTypeHandler) CreateServiceType(c *gin.Context) {
	var serviceType models.ServiceType
	if err := c.ShouldBindJSON(&serviceType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &serviceType); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, serviceType)
}

func (h *ServiceTypeHandler) GetServiceTypeByID(c *gin.Context) {
	serviceType, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, serviceType)
}

func (h *ServiceTypeHandler) GetAllServiceTypes(c *gin.Context) {
	serviceTypes, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, serviceTypes)
}

func (h *ServiceTypeHandler) UpdateServiceType(c *gin.Context) {
	var serviceType models.ServiceType
	if err := c.ShouldBindJSON(&serviceType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	serviceType.ID = c.Param("id")
	if err := h.service.Update(c.Request.Context(), &serviceType); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, serviceType)
}

func (h *ServiceTypeHandler) DeleteServiceType(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Service type deleted"})
}
