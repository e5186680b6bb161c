package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

type WorkingHoursHandler struct {
	uc *ucBooking.WorkingHours
}

func NewWorkingHoursHandler(uc *ucBooking.WorkingHours) *WorkingHoursHandler {
	return &WorkingHoursHandler{uc: uc}
}

type WorkingHoursEntryRequest struct {
	DayOfWeek *int   `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type WorkingHoursUpdateRequest struct {
	Entries []WorkingHoursEntryRequest `json:"entries" binding:"required,dive"`
}

type workingHoursResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func renderWorkingHours(rows []models.WorkingHours) []workingHoursResponse {
	out := make([]workingHoursResponse, 0, len(rows))
	for _, wh := range rows {
		out = append(out, workingHoursResponse{
			DayOfWeek: wh.DayOfWeek,
			StartTime: wh.StartTime,
			EndTime:   wh.EndTime,
		})
	}
	return out
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	proID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rows, err := h.uc.List(c.Request.Context(), barbershopID, proID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": renderWorkingHours(rows)})
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	proID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	entries := make([]ucBooking.WorkingHoursEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, ucBooking.WorkingHoursEntry{
			DayOfWeek: *e.DayOfWeek,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}

	rows, err := h.uc.Replace(c.Request.Context(), barbershopID, proID, entries)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": renderWorkingHours(rows)})
}
