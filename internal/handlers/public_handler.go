package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves a barbershop's booking page, where clients are
// identified by phone only.
type PublicHandler struct {
	services      *ucBooking.ListServices
	professionals *ucBooking.ListProfessionalsByService
	resolveClient *ucBooking.ResolveClient
	create        *ucBooking.CreateBooking
	byPhone       *ucBooking.ListBookingsByPhone
}

func NewPublicHandler(
	services *ucBooking.ListServices,
	professionals *ucBooking.ListProfessionalsByService,
	resolveClient *ucBooking.ResolveClient,
	create *ucBooking.CreateBooking,
	byPhone *ucBooking.ListBookingsByPhone,
) *PublicHandler {
	return &PublicHandler{
		services:      services,
		professionals: professionals,
		resolveClient: resolveClient,
		create:        create,
		byPhone:       byPhone,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type ResolveClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone" binding:"required"`
}

type PublicCreateBookingRequest struct {
	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceIDs     []uint `json:"service_ids"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
}

////////////////////////////////////////////////////////
// CATALOGUE
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.services.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, dto.Services(services))
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	serviceIDs, err := parseIDList(c.Query("service_ids"))
	if err != nil {
		badRequest(c, "invalid_request")
		return
	}

	pros, err := h.professionals.Execute(c.Request.Context(), c.Param("slug"), serviceIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, dto.Professionals(pros))
}

////////////////////////////////////////////////////////
// CLIENT BY PHONE
////////////////////////////////////////////////////////

func (h *PublicHandler) ResolveClient(c *gin.Context) {
	var req ResolveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	client, err := h.resolveClient.Execute(c.Request.Context(), ucBooking.ResolveClientInput{
		Slug:  c.Param("slug"),
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, dto.Client(*client))
}

////////////////////////////////////////////////////////
// BOOKINGS
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	ctx := c.Request.Context()

	client, err := h.resolveClient.Execute(ctx, ucBooking.ResolveClientInput{
		Slug:  c.Param("slug"),
		Name:  req.ClientName,
		Phone: req.ClientPhone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	b, err := h.create.Execute(ctx, ucBooking.CreateBookingInput{
		ClientID:       client.ID,
		ProfessionalID: req.ProfessionalID,
		ServiceIDs:     req.ServiceIDs,
		BarbershopID:   client.BarbershopID,
		Date:           strings.TrimSpace(req.Date),
		Time:           strings.TrimSpace(req.Time),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := dto.Booking(*b, b.StartTime.Location())
	cl := dto.Client(*client)
	out.Client = &cl

	httpresp.Created(c, out)
}

func (h *PublicHandler) ListBookingsByPhone(c *gin.Context) {
	out, err := h.byPhone.Execute(c.Request.Context(), c.Param("slug"), c.Query("phone"))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, dto.Bookings(out.Bookings, out.Location))
}
