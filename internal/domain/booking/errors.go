package booking

import (
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// ErrRecordNotFound is returned by repositories when a lookup matches nothing.
var ErrRecordNotFound = errors.New("record not found")

var (
	ErrNoServicesSelected  = httperr.Validation("no_services_selected")
	ErrInvalidDate         = httperr.Validation("invalid_date")
	ErrInvalidTime         = httperr.Validation("invalid_date_or_time")
	ErrInvalidWorkingHours = httperr.Validation("invalid_working_hours")
	ErrInvalidSlotCount    = httperr.Validation("invalid_slot_count")
	ErrMissingIDs          = httperr.Validation("missing_ids")
	ErrInvalidPhone        = httperr.Validation("invalid_phone")
	ErrInvalidRange        = httperr.Validation("invalid_range")
	ErrMissingClient       = httperr.Validation("missing_client")

	ErrSlotUnavailable                 = httperr.Unavailable("slot_unavailable")
	ErrInsufficientContiguousAvailable = httperr.Unavailable("insufficient_contiguous_availability")
	ErrOutsideWorkingHours             = httperr.Unavailable("outside_working_hours")
	ErrSlotInPast                      = httperr.Unavailable("slot_in_past")

	ErrSlotConflict = httperr.Conflict("slot_conflict")

	ErrServiceNotFound      = httperr.NotFoundErr("service_not_found")
	ErrProfessionalNotFound = httperr.NotFoundErr("professional_not_found")
	ErrBarbershopNotFound   = httperr.NotFoundErr("barbershop_not_found")
)
