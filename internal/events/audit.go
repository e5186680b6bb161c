package events

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// AuditSink writes one audit_logs row per event. Replays of the same event
// id are ignored.
type AuditSink struct {
	db *gorm.DB
}

func NewAuditSink(db *gorm.DB) *AuditSink {
	return &AuditSink{db: db}
}

func (s *AuditSink) Name() string { return "audit" }

func (s *AuditSink) Handle(ctx context.Context, ev domain.Event) error {
	row := AuditRow(ev)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_id"}}, DoNothing: true}).
		Create(&row).Error
}

// AuditRow maps an event onto the audit_logs shape.
func AuditRow(ev domain.Event) models.AuditLog {
	var metaJSON string
	if b, err := json.Marshal(map[string]any{
		"start_time":  ev.StartTime,
		"end_time":    ev.EndTime,
		"service_ids": ev.ServiceIDs,
	}); err == nil {
		metaJSON = string(b)
	}

	clientID := ev.ClientID
	bookingID := ev.BookingID

	return models.AuditLog{
		EventID:        ev.ID,
		ProfessionalID: ev.ProfessionalID,
		ClientID:       &clientID,
		Action:         string(ev.Type),
		Entity:         "booking",
		EntityID:       &bookingID,
		Metadata:       metaJSON,
		CreatedAt:      ev.OccurredAt,
	}
}
