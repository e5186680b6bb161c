package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	schedule     *ucBooking.GetSchedule
	availability *ucBooking.GetAvailability
	preview      *ucBooking.PreviewRun
	create       *ucBooking.CreateBooking
	cancel       *ucBooking.CancelBookings
	byDay        *ucBooking.ListBookingsByDay
}

func NewBookingHandler(
	schedule *ucBooking.GetSchedule,
	availability *ucBooking.GetAvailability,
	preview *ucBooking.PreviewRun,
	create *ucBooking.CreateBooking,
	cancel *ucBooking.CancelBookings,
	byDay *ucBooking.ListBookingsByDay,
) *BookingHandler {
	return &BookingHandler{
		schedule:     schedule,
		availability: availability,
		preview:      preview,
		create:       create,
		cancel:       cancel,
		byDay:        byDay,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceIDs     []uint `json:"service_ids"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm

	// only honoured for admins booking on a client's behalf
	ClientID uint `json:"client_id"`
}

type CancelBookingsRequest struct {
	IDs []uint `json:"ids"`
}

// ======================================================
// SCHEDULE / AVAILABILITY
// ======================================================

func (h *BookingHandler) Schedule(c *gin.Context) {
	proID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	out, err := h.schedule.Execute(c.Request.Context(), proID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	entries := make([]gin.H, 0, len(out.WorkingHours))
	for _, wh := range out.WorkingHours {
		entries = append(entries, gin.H{
			"day_of_week": wh.DayOfWeek,
			"start_time":  wh.StartTime,
			"end_time":    wh.EndTime,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":          out.Date,
		"timezone":      out.Timezone,
		"working_hours": entries,
		"slots":         out.Slots,
	})
}

func (h *BookingHandler) Availability(c *gin.Context) {
	proID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), proID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     out.Date,
		"timezone": out.Timezone,
		"slots":    out.Slots,
	})
}

func (h *BookingHandler) PreviewRun(c *gin.Context) {
	proID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	serviceIDs, err := parseIDList(c.Query("service_ids"))
	if err != nil {
		badRequest(c, "invalid_request")
		return
	}

	out, err := h.preview.Execute(c.Request.Context(), ucBooking.PreviewRunInput{
		ProfessionalID: proID,
		ServiceIDs:     serviceIDs,
		Date:           c.Query("date"),
		Time:           c.Query("time"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slots":         out.Slots,
		"slots_needed":  out.SlotsNeeded,
		"total_minutes": out.TotalMinutes,
		"start_time":    out.Start,
		"end_time":      out.End,
	})
}

// ======================================================
// CREATE / CANCEL (AUTENTICADO)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	subjectID := c.MustGet(middleware.ContextSubjectID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	role := c.GetString(middleware.ContextRole)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	clientID := subjectID
	if role == middleware.RoleAdmin {
		clientID = req.ClientID
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientID:       clientID,
		ProfessionalID: req.ProfessionalID,
		ServiceIDs:     req.ServiceIDs,
		BarbershopID:   barbershopID,
		Date:           strings.TrimSpace(req.Date),
		Time:           strings.TrimSpace(req.Time),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, dto.Booking(*b, b.StartTime.Location()))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	subjectID := c.MustGet(middleware.ContextSubjectID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	role := c.GetString(middleware.ContextRole)

	var req CancelBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	in := ucBooking.CancelBookingsInput{
		IDs:          req.IDs,
		BarbershopID: barbershopID,
	}
	if role != middleware.RoleAdmin {
		in.ClientID = &subjectID
	}

	n, err := h.cancel.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transitioned_count": n})
}

// ======================================================
// ADMIN: AGENDA DO DIA
// ======================================================

func (h *BookingHandler) ListByDay(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	proID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	out, err := h.byDay.Execute(c.Request.Context(), barbershopID, proID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"bookings": dto.Bookings(out.Bookings, out.Location),
	})
}
