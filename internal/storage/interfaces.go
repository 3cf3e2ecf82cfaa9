package storage

import "salon_turnos/internal/storage/models"

// Table is one backing collection of records
type Table interface {
	// Bootstrap creates the backing file with only the header row when
	// it does not exist yet.
	Bootstrap() error
	// Read loads all records. A missing file reads as no data.
	Read() ([]models.Record, error)
	// Write overwrites the whole collection. Writing an empty set is a
	// no-op and leaves the file untouched.
	Write(recs []models.Record) error
}

// Store groups the four collections the agenda persists through
type Store interface {
	Clientes() Table
	Profesionales() Table
	Slots() Table
	Turnos() Table
}
