package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "booking_created_total",
			Help:      "Count of bookings committed.",
		},
	)

	bookingRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "booking_rejected_total",
			Help:      "Count of booking attempts rejected, by error code.",
		},
		[]string{"code"},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "booking_cancelled_total",
			Help:      "Count of bookings moved to cancelled.",
		},
	)

	availabilityQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "availability_queries_total",
			Help:      "Count of availability computations.",
		},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "availability_cache_lookups_total",
			Help:      "Availability cache lookups by result.",
		},
		[]string{"result"},
	)

	eventsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_booking",
			Name:      "events_dropped_total",
			Help:      "Booking events that could not be delivered, by sink.",
		},
		[]string{"sink"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingCreated,
			bookingRejected,
			bookingCancelled,
			availabilityQueries,
			cacheLookups,
			eventsDropped,
		)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingRejected(code string) {
	bookingRejected.WithLabelValues(code).Inc()
}

func AddBookingCancelled(n int) {
	bookingCancelled.Add(float64(n))
}

func IncAvailabilityQuery() {
	availabilityQueries.Inc()
}

func IncCacheLookup(result string) {
	cacheLookups.WithLabelValues(result).Inc()
}

func IncEventDropped(sink string) {
	eventsDropped.WithLabelValues(sink).Inc()
}
