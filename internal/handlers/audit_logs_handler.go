package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

// AuditLogsHandler pages through the booking events recorded by the audit
// sink. It only exists when bookings are stored in Postgres.
type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List accepts action, professional_id, booking_id, from and to (civil
// days in UTC, both inclusive), page and limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", auditDefaultLimit)
	if limit > auditMaxLimit {
		limit = auditDefaultLimit
	}

	db := h.db.WithContext(c.Request.Context())

	owned := db.Model(&models.Professional{}).
		Select("id").
		Where("barbershop_id = ?", barbershopID)

	q := db.Model(&models.AuditLog{}).Where("professional_id IN (?)", owned)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if raw := c.Query("professional_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			badRequest(c, "invalid_id")
			return
		}
		q = q.Where("professional_id = ?", id)
	}

	if raw := c.Query("booking_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			badRequest(c, "invalid_id")
			return
		}
		q = q.Where("entity = ? AND entity_id = ?", "booking", id)
	}

	if raw := c.Query("from"); raw != "" {
		from, err := timezone.ParseDate(raw, time.UTC)
		if err != nil {
			badRequest(c, "invalid_date")
			return
		}
		q = q.Where("created_at >= ?", from)
	}

	if raw := c.Query("to"); raw != "" {
		to, err := timezone.ParseDate(raw, time.UTC)
		if err != nil {
			badRequest(c, "invalid_date")
			return
		}
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}

	logs := []models.AuditLog{}
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"data":  logs,
	})
}

// queryInt reads a positive integer query parameter, falling back to def.
func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
