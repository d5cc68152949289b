package handlers

import (
	"hospitalflow/middlewares"
	"hospitalflow/models"
	"hospitalflow/services"
	"hospitalflow/utils"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	service *services.ServiceService
}

func NewServiceHandler(service *services.ServiceService) *ServiceHandler {
	return &ServiceHandler{service: service}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateServiceData(svc); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	if err := h.service.Create(c.Request.Context(), &svc); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, svc)
}

func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	svc, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, svc)
}

func (h *ServiceHandler) GetAllServices(c *gin.Context) {
	svcs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, svcs)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	svc.ID = c.Param("id")
	if err := h.service.Update(c.Request.Context(), &svc); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, svc)
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Service deleted"})
}
