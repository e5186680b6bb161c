package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestBookingTotalsExactly(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	start := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)
	b := models.Booking{
		ID:        5,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    models.BookingActive,
		Services: []models.Service{
			{ID: 1, Name: "Corte", Price: decimal.RequireFromString("0.10")},
			{ID: 2, Name: "Barba", Price: decimal.RequireFromString("0.20")},
		},
	}

	got := Booking(b, loc)

	assert.Equal(t, "0.30", got.TotalPrice)
	assert.Equal(t, "0.10", got.Services[0].Price)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, 8, got.StartTime.Hour())
	assert.Nil(t, got.Client)
	assert.Nil(t, got.Professional)
}
