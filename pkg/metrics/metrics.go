package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Salon scheduling metrics
var (
	// Client metrics
	ClientRegistrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "salon_client_registrations_total",
			Help: "Total de clientes registrados",
		},
	)

	// Turno metrics
	TurnosCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "salon_turnos_created_total",
			Help: "Total de turnos confirmados",
		},
	)

	TurnosCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "salon_turnos_cancelled_total",
			Help: "Total de turnos cancelados",
		},
	)

	TurnosUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "salon_turnos_updated_total",
			Help: "Total de turnos con servicio modificado",
		},
	)

	AvailabilityMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "salon_availability_misses_total",
			Help: "Solicitudes de turno sin profesional disponible",
		},
	)

	// Storage metrics
	StorageOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_storage_operations_total",
			Help: "Operaciones sobre los archivos de datos",
		},
		[]string{"operation", "collection", "status"},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_errors_total",
			Help: "Errores de negocio por código",
		},
		[]string{"operation", "code"},
	)
)

// RecordClientRegistration records a successful client registration
func RecordClientRegistration() {
	ClientRegistrations.Inc()
}

// RecordTurnoCreated records a confirmed turno
func RecordTurnoCreated() {
	TurnosCreated.Inc()
}

// RecordTurnoCancelled records a cancelled turno
func RecordTurnoCancelled() {
	TurnosCancelled.Inc()
}

// RecordTurnoUpdated records a service change on a turno
func RecordTurnoUpdated() {
	TurnosUpdated.Inc()
}

// RecordAvailabilityMiss records a booking request that found no free professional
func RecordAvailabilityMiss() {
	AvailabilityMisses.Inc()
}

// RecordStorageOperation records a read/write against a data file
func RecordStorageOperation(operation, collection, status string) {
	StorageOperations.WithLabelValues(operation, collection, status).Inc()
}

// RecordError records a business error by operation and code
func RecordError(operation, code string) {
	ErrorsTotal.WithLabelValues(operation, code).Inc()
}
