package handlers

import (
	"hospitalflow/middlewares"
	"hospitalflow/models"
	"hospitalflow/services"

	"github.com/gin-gonic/gin"
)

type LabHandler struct {
	service *services.LabService
}

func NewLabHandler(service *services.LabService) *LabHandler {
	return &LabHandler{service: service}
}

func (h *LabHandler) CreateLabTest(c *gin.Context) {
	var test models.LabTest
	if err := c.ShouldBindJSON(&test); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateTest(c.Request.Context(), &test); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, test)
}

func (h *LabHandler) GetLabTestByID(c *gin.Context) {
	test, err := h.service.GetTestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, test)
}

func (h *LabHandler) GetAllLabTests(c *gin.Context) {
	tests, err := h.service.GetAllTests(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, tests)
}

// CreateLabOrder orders a lab test during a visit. Patient and doctor are
// backfilled from the visit.
func (h *LabHandler) CreateLabOrder(c *gin.Context) {
	var order models.LabOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateOrder(c.Request.Context(), &order); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, order)
}

func (h *LabHandler) GetLabOrderByID(c *gin.Context) {
	order, err := h.service.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, order)
}

func (h *LabHandler) GetAllLabOrders(c *gin.Context) {
	orders, err := h.service.GetAllOrders(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, orders)
}

func (h *LabHandler) GetLabOrdersByVisit(c *gin.Context) {
	orders, err := h.service.GetOrdersByVisit(c.Request.Context(), c.Param("visitId"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, orders)
}

func (h *LabHandler) UpdateLabOrderStatus(c *gin.Context) {
	var body struct {
		Status models.LabOrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	order, err := h.service.UpdateOrderStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, order)
}
