package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Prices leave the API as fixed two-decimal strings, never floats.

type ServiceDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
}

type ProfessionalDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ClientDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type BookingDTO struct {
	ID           uint             `json:"id"`
	StartTime    time.Time        `json:"start_time"`
	EndTime      time.Time        `json:"end_time"`
	Status       string           `json:"status"`
	Client       *ClientDTO       `json:"client,omitempty"`
	Professional *ProfessionalDTO `json:"professional,omitempty"`
	Services     []ServiceDTO     `json:"services"`
	TotalPrice   string           `json:"total_price"`
}

func Price(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func Service(s models.Service) ServiceDTO {
	return ServiceDTO{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           Price(s.Price),
	}
}

func Services(list []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(list))
	for _, s := range list {
		out = append(out, Service(s))
	}
	return out
}

func Professionals(list []models.Professional) []ProfessionalDTO {
	out := make([]ProfessionalDTO, 0, len(list))
	for _, p := range list {
		out = append(out, ProfessionalDTO{ID: p.ID, Name: p.Name})
	}
	return out
}

func Client(c models.Client) ClientDTO {
	return ClientDTO{ID: c.ID, Name: c.Name, Phone: c.Phone}
}

func StatusLabel(s models.BookingStatus) string {
	if s == models.BookingActive {
		return "active"
	}
	return "cancelled"
}

// Booking renders b in the barbershop's location. Client and professional
// are included only when loaded.
func Booking(b models.Booking, loc *time.Location) BookingDTO {
	total := decimal.Zero
	for _, s := range b.Services {
		total = total.Add(s.Price)
	}

	out := BookingDTO{
		ID:         b.ID,
		StartTime:  b.StartTime.In(loc),
		EndTime:    b.EndTime.In(loc),
		Status:     StatusLabel(b.Status),
		Services:   Services(b.Services),
		TotalPrice: Price(total),
	}
	if b.Client.ID != 0 {
		c := Client(b.Client)
		out.Client = &c
	}
	if b.Professional.ID != 0 {
		out.Professional = &ProfessionalDTO{ID: b.Professional.ID, Name: b.Professional.Name}
	}
	return out
}

func Bookings(list []models.Booking, loc *time.Location) []BookingDTO {
	out := make([]BookingDTO, 0, len(list))
	for _, b := range list {
		out = append(out, Booking(b, loc))
	}
	return out
}

type ProfessionalRevenueDTO struct {
	ProfessionalID uint   `json:"professional_id"`
	Name           string `json:"name"`
	Bookings       int    `json:"bookings"`
	Revenue        string `json:"revenue"`
}
