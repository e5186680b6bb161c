package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// SeedDemo fills r with one barbershop, a small catalogue and a professional
// working Monday to Saturday, for STORAGE_DRIVER=memory runs.
func SeedDemo(r *MemoryRepository) models.Barbershop {
	shop := r.AddBarbershop(models.Barbershop{
		Name:     "Barbearia Demo",
		Slug:     "demo",
		Timezone: timezone.DefaultTimezone,
	})

	cut := r.AddService(models.Service{
		BarbershopID:    shop.ID,
		Name:            "Corte",
		DurationMinutes: 30,
		Price:           decimal.RequireFromString("45.00"),
		Active:          true,
	})
	beard := r.AddService(models.Service{
		BarbershopID:    shop.ID,
		Name:            "Barba",
		DurationMinutes: 20,
		Price:           decimal.RequireFromString("30.00"),
		Active:          true,
	})

	pro := r.AddProfessional(models.Professional{
		BarbershopID: shop.ID,
		Name:         "João",
		Active:       true,
	}, cut.ID, beard.ID)

	var hours []models.WorkingHours
	for day := 1; day <= 6; day++ {
		hours = append(hours,
			models.WorkingHours{DayOfWeek: day, StartTime: "09:00", EndTime: "12:00"},
			models.WorkingHours{DayOfWeek: day, StartTime: "13:00", EndTime: "19:00"},
		)
	}
	_ = r.ReplaceWorkingHours(context.Background(), pro.ID, hours)

	return shop
}
