package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveBillStatus(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		paid  float64
		want  BillStatus
	}{
		{"nothing paid", 500, 0, BillPending},
		{"partial payment", 500, 200, BillPartial},
		{"almost settled", 500, 499.99, BillPartial},
		{"exactly settled", 500, 500, BillPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveBillStatus(tt.total, tt.paid))
		})
	}
}

func TestSumItems(t *testing.T) {
	items := []BillItem{
		{Type: BillItemConsultation, Name: "General Consultation", Amount: 600},
		{Type: BillItemService, Name: "ECG", Amount: 300},
		{Type: BillItemLab, Name: "Complete Blood Count", Amount: 250},
	}
	assert.Equal(t, 1150.0, SumItems(items))
	assert.Equal(t, 0.0, SumItems(nil))
}

func TestBillOutstanding(t *testing.T) {
	b := &Bill{TotalAmount: 800, PaidAmount: 300}
	assert.Equal(t, 500.0, b.Outstanding())
}

func TestApplyPaymentSequence(t *testing.T) {
	b := Bill{TotalAmount: 600, PaidAmount: 0, Status: BillPending}

	require.NoError(t, b.ApplyPayment(200))
	assert.Equal(t, 200.0, b.PaidAmount)
	assert.Equal(t, BillPartial, b.Status)

	require.NoError(t, b.ApplyPayment(400))
	assert.Equal(t, 600.0, b.PaidAmount)
	assert.Equal(t, BillPaid, b.Status)

	err := b.ApplyPayment(1)
	require.Error(t, err, "settled bills accept no further payment")
	assert.ErrorIs(t, err, ErrOverpayment)
	assert.Equal(t, 600.0, b.PaidAmount, "rejected payment leaves the bill unchanged")
	assert.Equal(t, BillPaid, b.Status)
}

func TestApplyPaymentRejectsOverpayment(t *testing.T) {
	b := Bill{TotalAmount: 500, PaidAmount: 300, Status: BillPartial}

	err := b.ApplyPayment(201)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverpayment)
	assert.Equal(t, 300.0, b.PaidAmount)
	assert.Equal(t, BillPartial, b.Status)
}

func TestApplyPaymentRejectsNonPositiveAmounts(t *testing.T) {
	b := Bill{TotalAmount: 500, PaidAmount: 0, Status: BillPending}

	for _, amount := range []float64{0, -50} {
		err := b.ApplyPayment(amount)
		require.Error(t, err, "amount %v", amount)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Equal(t, 0.0, b.PaidAmount)
}

func TestApplyPaymentNeverExceedsTotal(t *testing.T) {
	b := Bill{TotalAmount: 1000, PaidAmount: 0, Status: BillPending}

	for _, amount := range []float64{250, 500, 400, 250, 250} {
		_ = b.ApplyPayment(amount)
		assert.LessOrEqual(t, b.PaidAmount, b.TotalAmount)
		assert.Equal(t, DeriveBillStatus(b.TotalAmount, b.PaidAmount), b.Status)
	}
	assert.Equal(t, 1000.0, b.PaidAmount)
	assert.Equal(t, BillPaid, b.Status)
}

func TestBillItemTypeValid(t *testing.T) {
	assert.True(t, BillItemConsultation.Valid())
	assert.True(t, BillItemService.Valid())
	assert.True(t, BillItemLab.Valid())
	assert.False(t, BillItemType("medicine").Valid())
}
