package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitStatusCanAdvanceTo(t *testing.T) {
	tests := []struct {
		from   VisitStatus
		to     VisitStatus
		want   bool
		reason string
	}{
		{VisitPending, VisitProcessing, true, "normal first step"},
		{VisitProcessing, VisitCompleted, true, "normal second step"},
		{VisitPending, VisitCompleted, false, "skipping a step"},
		{VisitPending, VisitPending, false, "no self transition"},
		{VisitProcessing, VisitPending, false, "no going back"},
		{VisitCompleted, VisitPending, false, "completed is terminal"},
		{VisitCompleted, VisitProcessing, false, "completed is terminal"},
		{VisitCompleted, VisitCompleted, false, "completed is terminal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to),
			"%s -> %s: %s", tt.from, tt.to, tt.reason)
	}
}

func TestCheckTransferRejections(t *testing.T) {
	available := &Doctor{ID: "doc2", Available: true}
	unavailable := &Doctor{ID: "doc3", Available: false}

	tests := []struct {
		name     string
		visit    Visit
		toDoctor string
		target   *Doctor
	}{
		{"completed visit", Visit{DoctorID: "doc1", Status: VisitCompleted}, "doc2", available},
		{"same doctor", Visit{DoctorID: "doc1", Status: VisitPending}, "doc1", available},
		{"unknown doctor", Visit{DoctorID: "doc1", Status: VisitPending}, "doc9", nil},
		{"unavailable doctor", Visit{DoctorID: "doc1", Status: VisitProcessing}, "doc3", unavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.visit.CheckTransfer(tt.toDoctor, tt.target)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTransfer)
		})
	}
}

func TestCheckTransferAllowsNonCompletedStates(t *testing.T) {
	target := &Doctor{ID: "doc2", Available: true}
	assert.NoError(t, (&Visit{DoctorID: "doc1", Status: VisitPending}).CheckTransfer("doc2", target))
	assert.NoError(t, (&Visit{DoctorID: "doc1", Status: VisitProcessing}).CheckTransfer("doc2", target))
}

func TestApplyTransfer(t *testing.T) {
	v := Visit{DoctorID: "doc1", Status: VisitProcessing}

	v.ApplyTransfer("doc2")

	require.NotNil(t, v.TransferredFrom)
	assert.Equal(t, "doc1", *v.TransferredFrom, "records the pre-transfer doctor")
	require.NotNil(t, v.TransferredTo)
	assert.Equal(t, "doc2", *v.TransferredTo)
	assert.Equal(t, "doc2", v.DoctorID)
	assert.Equal(t, VisitPending, v.Status, "workflow restarts under the new doctor")
}

func TestApplyTransferKeepsOnlyMostRecentHop(t *testing.T) {
	v := Visit{DoctorID: "doc1", Status: VisitPending}

	v.ApplyTransfer("doc2")
	v.ApplyTransfer("doc3")

	require.NotNil(t, v.TransferredFrom)
	assert.Equal(t, "doc2", *v.TransferredFrom, "second transfer overwrites the first hop")
	require.NotNil(t, v.TransferredTo)
	assert.Equal(t, "doc3", *v.TransferredTo)
	assert.Equal(t, "doc3", v.DoctorID)
}

func TestVisitStatusValid(t *testing.T) {
	assert.True(t, VisitPending.Valid())
	assert.True(t, VisitProcessing.Valid())
	assert.True(t, VisitCompleted.Valid())
	assert.False(t, VisitStatus("cancelled").Valid())
	assert.False(t, VisitStatus("").Valid())
}
