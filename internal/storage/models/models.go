package models

// Record is one row of a backing file, keyed by the file's header names.
// All values are plain text; the agenda interprets them.
type Record map[string]string

// Estado values for a professional
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Disponible values for a slot. The exact strings come from the data
// files and must round-trip unchanged.
const (
	SlotLibre   = "True"
	SlotOcupado = "False"
)

// Declared field lists, used to seed a fresh file's header row and as the
// write order for each collection.
var (
	ClienteFields     = []string{"dni", "nombre", "apellido", "email", "telefono"}
	ProfesionalFields = []string{"id", "nombre", "estado"}
	SlotFields        = []string{"profesional_id", "fecha", "hora", "disponible"}
	TurnoFields       = []string{"id", "cliente_dni", "profesional_id", "fecha", "hora", "servicio"}
)

// Cliente is a registered client, identified by DNI
type Cliente struct {
	Dni      string `json:"dni"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// NombreCompleto returns "Nombre Apellido"
func (c Cliente) NombreCompleto() string {
	return c.Nombre + " " + c.Apellido
}

// ToRecord converts the client to a storage record
func (c Cliente) ToRecord() Record {
	return Record{
		"dni":      c.Dni,
		"nombre":   c.Nombre,
		"apellido": c.Apellido,
		"email":    c.Email,
		"telefono": c.Telefono,
	}
}

// ClienteFromRecord builds a client from a storage record
func ClienteFromRecord(r Record) Cliente {
	return Cliente{
		Dni:      r["dni"],
		Nombre:   r["nombre"],
		Apellido: r["apellido"],
		Email:    r["email"],
		Telefono: r["telefono"],
	}
}

// Profesional is a staff member who can take turnos
type Profesional struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Estado string `json:"estado"`
}

// Activo reports whether the professional can be assigned turnos
func (p Profesional) Activo() bool {
	return p.Estado == EstadoActivo
}

// ToRecord converts the professional to a storage record
func (p Profesional) ToRecord() Record {
	return Record{
		"id":     p.ID,
		"nombre": p.Nombre,
		"estado": p.Estado,
	}
}

// ProfesionalFromRecord builds a professional from a storage record
func ProfesionalFromRecord(r Record) Profesional {
	return Profesional{
		ID:     r["id"],
		Nombre: r["nombre"],
		Estado: r["estado"],
	}
}

// Slot is a cached view of whether a professional is booked at a
// date/time. Occupancy is always derived from the turno collection; the
// disponible flag is kept in sync but never gates a booking.
type Slot struct {
	ProfesionalID string `json:"profesional_id"`
	Fecha         string `json:"fecha"`
	Hora          string `json:"hora"`
	Disponible    string `json:"disponible"`
}

// Matches reports whether the slot is for the given triple
func (s Slot) Matches(profesionalID, fecha, hora string) bool {
	return s.ProfesionalID == profesionalID && s.Fecha == fecha && s.Hora == hora
}

// ToRecord converts the slot to a storage record
func (s Slot) ToRecord() Record {
	return Record{
		"profesional_id": s.ProfesionalID,
		"fecha":          s.Fecha,
		"hora":           s.Hora,
		"disponible":     s.Disponible,
	}
}

// SlotFromRecord builds a slot from a storage record
func SlotFromRecord(r Record) Slot {
	return Slot{
		ProfesionalID: r["profesional_id"],
		Fecha:         r["fecha"],
		Hora:          r["hora"],
		Disponible:    r["disponible"],
	}
}

// Turno is the authoritative booking record
type Turno struct {
	ID            string `json:"id"`
	ClienteDni    string `json:"cliente_dni"`
	ProfesionalID string `json:"profesional_id"`
	Fecha         string `json:"fecha"`
	Hora          string `json:"hora"`
	Servicio      string `json:"servicio"`
}

// Occupies reports whether the turno takes up the given triple
func (t Turno) Occupies(profesionalID, fecha, hora string) bool {
	return t.ProfesionalID == profesionalID && t.Fecha == fecha && t.Hora == hora
}

// ToRecord converts the turno to a storage record
func (t Turno) ToRecord() Record {
	return Record{
		"id":             t.ID,
		"cliente_dni":    t.ClienteDni,
		"profesional_id": t.ProfesionalID,
		"fecha":          t.Fecha,
		"hora":           t.Hora,
		"servicio":       t.Servicio,
	}
}

// TurnoFromRecord builds a turno from a storage record
func TurnoFromRecord(r Record) Turno {
	return Turno{
		ID:            r["id"],
		ClienteDni:    r["cliente_dni"],
		ProfesionalID: r["profesional_id"],
		Fecha:         r["fecha"],
		Hora:          r["hora"],
		Servicio:      r["servicio"],
	}
}

// TurnoView is a turno joined with the display names of its client and
// professional, for listings.
type TurnoView struct {
	Turno
	ClienteNombre     string `json:"cliente_nombre"`
	ProfesionalNombre string `json:"profesional_nombre"`
}
