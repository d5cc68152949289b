package handlers

import (
	"context"
	"log"

	"hospitalflow/middlewares"
	"hospitalflow/models"
	"hospitalflow/services"
	"hospitalflow/utils"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	service  *services.BillingService
	patients *services.PatientService
}

func NewBillingHandler(service *services.BillingService, patients *services.PatientService) *BillingHandler {
	return &BillingHandler{service: service, patients: patients}
}

func (h *BillingHandler) CreateBill(c *gin.Context) {
	var bill models.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &bill); err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(201, bill)
}

func (h *BillingHandler) GetBillByID(c *gin.Context) {
	bill, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, bill)
}

func (h *BillingHandler) GetAllBills(c *gin.Context) {
	bills, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, bills)
}

func (h *BillingHandler) GetBillsByPatient(c *gin.Context) {
	bills, err := h.service.GetByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}
	c.JSON(200, bills)
}

// RecordPayment applies a partial or full payment to a bill. Overpayment is
// rejected; the bill status is rederived from the new paid amount. A receipt
// email failure never fails the request since the payment is already
// recorded.
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	bill, err := h.service.ApplyPayment(c.Request.Context(), c.Param("id"), body.Amount)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	if utils.ReceiptMailConfigured() {
		go h.sendReceipt(bill, body.Amount)
	}

	c.JSON(200, bill)
}

func (h *BillingHandler) sendReceipt(bill *models.Bill, amount float64) {
	patient, err := h.patients.GetByID(context.Background(), bill.PatientID)
	if err != nil || patient.Email == "" {
		return
	}
	if err := utils.SendPaymentReceiptEmail(patient.Email, bill.ID, amount, bill.Outstanding()); err != nil {
		log.Printf("Failed to send payment receipt for bill %s: %v", bill.ID, err)
	}
}
