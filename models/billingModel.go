package models

import (
	"fmt"
	"time"
)

// BillStatus is the payment state of a bill.
type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPartial BillStatus = "partial"
	BillPaid    BillStatus = "paid"
)

// BillItemType classifies a line item on a bill.
type BillItemType string

const (
	BillItemConsultation BillItemType = "consultation"
	BillItemService      BillItemType = "service"
	BillItemLab          BillItemType = "lab"
)

// Valid reports whether the value is one of the closed set of item types.
func (t BillItemType) Valid() bool {
	switch t {
	case BillItemConsultation, BillItemService, BillItemLab:
		return true
	}
	return false
}

// Bill model. Items are append-only; after creation only PaidAmount and
// Status change, and PaidAmount never decreases.
type Bill struct {
	ID          string     `gorm:"primaryKey;column:id" json:"id"`
	PatientID   string     `gorm:"column:patient_id;not null;index" json:"patient_id"`
	VisitID     *string    `gorm:"column:visit_id;index" json:"visit_id,omitempty"`
	Items       []BillItem `gorm:"foreignKey:BillID;references:ID" json:"items"`
	TotalAmount float64    `gorm:"column:total_amount;not null;check:total_amount >= 0" json:"total_amount"`
	PaidAmount  float64    `gorm:"column:paid_amount;not null;check:paid_amount >= 0" json:"paid_amount"`
	Status      BillStatus `gorm:"column:status;check:status IN ('pending', 'partial', 'paid');not null" json:"status"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Bill) TableName() string {
	return "bill"
}

// BillItem model. Immutable once attached to a bill.
type BillItem struct {
	ID     string       `gorm:"primaryKey;column:id" json:"id"`
	BillID string       `gorm:"column:bill_id;not null;index" json:"bill_id"`
	Type   BillItemType `gorm:"column:type;check:type IN ('consultation', 'service', 'lab');not null" json:"type"`
	Name   string       `gorm:"column:name;not null" json:"name"`
	Amount float64      `gorm:"column:amount;not null;check:amount >= 0" json:"amount"`
}

func (BillItem) TableName() string {
	return "bill_item"
}

// SumItems totals the line item amounts.
func SumItems(items []BillItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	return total
}

// DeriveBillStatus maps paid vs total onto the bill status: paid when the
// balance is settled, partial when something but not everything has been
// received, pending otherwise.
func DeriveBillStatus(totalAmount, paidAmount float64) BillStatus {
	switch {
	case paidAmount >= totalAmount:
		return BillPaid
	case paidAmount > 0:
		return BillPartial
	}
	return BillPending
}

// Outstanding returns the unpaid balance.
func (b *Bill) Outstanding() float64 {
	return b.TotalAmount - b.PaidAmount
}

// ApplyPayment records a payment and reclassifies the bill. The amount must
// be positive and must not exceed the outstanding balance, so the paid
// amount never decreases and never passes the total.
func (b *Bill) ApplyPayment(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("payment amount must be positive: %w", ErrValidation)
	}
	if amount > b.Outstanding() {
		return fmt.Errorf("payment of %.2f exceeds outstanding balance of %.2f: %w",
			amount, b.Outstanding(), ErrOverpayment)
	}
	b.PaidAmount += amount
	b.Status = DeriveBillStatus(b.TotalAmount, b.PaidAmount)
	return nil
}
