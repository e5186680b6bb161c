package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

type ReportHandler struct {
	revenue *ucBooking.RevenueReport
}

func NewReportHandler(revenue *ucBooking.RevenueReport) *ReportHandler {
	return &ReportHandler{revenue: revenue}
}

// Professionals: GET /api/admin/reports/professionals?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *ReportHandler) Professionals(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	rows, err := h.revenue.Execute(
		c.Request.Context(),
		barbershopID,
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.ProfessionalRevenueDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProfessionalRevenueDTO{
			ProfessionalID: r.ProfessionalID,
			Name:           r.Name,
			Bookings:       r.Bookings,
			Revenue:        dto.Price(r.Revenue),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"start":         c.Query("start"),
		"end":           c.Query("end"),
		"professionals": out,
	})
}
