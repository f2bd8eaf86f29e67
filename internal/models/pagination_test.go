package models_test

import (
	"math"
	"testing"

	"stockroom/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest_Defaults(t *testing.T) {
	p := models.NewPageRequest(0, -3, "")
	assert.Equal(t, models.DefaultPage, p.Page)
	assert.Equal(t, models.DefaultPerPage, p.PerPage)
	assert.Equal(t, 0, p.Offset())
}

func TestNewPageRequest_CapsPerPage(t *testing.T) {
	p := models.NewPageRequest(1, 4611686018427387904, "")
	assert.Equal(t, models.MaxPerPage, p.PerPage)
}

func TestNewPageRequest_ClampsHugePage(t *testing.T) {
	p := models.NewPageRequest(3689348814741910324, 5, "")
	assert.Greater(t, p.Page, 1)
	assert.Greater(t, p.Offset(), 0)
	assert.LessOrEqual(t, p.Offset(), math.MaxInt32)

	p = models.NewPageRequest(math.MaxInt, models.MaxPerPage, "")
	assert.Greater(t, p.Offset(), 0)
	assert.LessOrEqual(t, p.Offset(), math.MaxInt32)
}

func TestPageRequest_TotalPages(t *testing.T) {
	p := models.NewPageRequest(2, 5, "")
	assert.Equal(t, 5, p.Offset())
	assert.Equal(t, int64(0), p.TotalPages(0))
	assert.Equal(t, int64(1), p.TotalPages(5))
	assert.Equal(t, int64(2), p.TotalPages(6))
	assert.Equal(t, int64(math.MaxInt64/5+1), p.TotalPages(math.MaxInt64))
}

func TestQuantityRange_Contains(t *testing.T) {
	lo, hi := 5, 10
	assert.True(t, models.QuantityRange{}.Contains(1))
	assert.True(t, models.QuantityRange{Min: &lo, Max: &hi}.Contains(5))
	assert.True(t, models.QuantityRange{Min: &lo, Max: &hi}.Contains(10))
	assert.False(t, models.QuantityRange{Min: &lo}.Contains(4))
	assert.False(t, models.QuantityRange{Max: &hi}.Contains(11))
}

func TestUser_SetName(t *testing.T) {
	var u models.User
	u.SetName("Kelvin", "Smith")
	assert.Equal(t, "Kelvin Smith", u.FullName)
}
