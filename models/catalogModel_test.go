package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceFor(t *testing.T) {
	service := &Service{ID: "srv1", BaseCost: 500}
	override := 600.0

	t.Run("custom price wins", func(t *testing.T) {
		mapping := &DoctorService{DoctorID: "doc1", ServiceID: "srv1", CustomPrice: &override}
		assert.Equal(t, 600.0, PriceFor(mapping, service))
	})

	t.Run("mapping without custom price falls back to base cost", func(t *testing.T) {
		mapping := &DoctorService{DoctorID: "doc1", ServiceID: "srv1"}
		assert.Equal(t, 500.0, PriceFor(mapping, service))
	})

	t.Run("no mapping falls back to base cost", func(t *testing.T) {
		assert.Equal(t, 500.0, PriceFor(nil, service))
	})
}

func TestServiceTypeIsRoot(t *testing.T) {
	parent := "st1"
	assert.True(t, (&ServiceType{ID: "st1"}).IsRoot())
	assert.False(t, (&ServiceType{ID: "st2", ParentID: &parent}).IsRoot())
}
