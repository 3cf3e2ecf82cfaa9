// Package agenda implements the scheduling core of the salon: the four
// in-memory collections, the booking rules and the CRUD operations the
// presentation layer drives. One Agenda owns one set of backing files;
// the system is single-process by contract.
package agenda

import (
	"fmt"
	"strconv"
	"strings"

	"salon_turnos/internal/config"
	"salon_turnos/internal/storage"
	"salon_turnos/internal/storage/models"
	"salon_turnos/internal/validation"
	"salon_turnos/pkg/errors"
	"salon_turnos/pkg/logger"
	"salon_turnos/pkg/metrics"
)

// Servicio is one entry of the fixed service catalog
type Servicio struct {
	Code   string
	Nombre string
}

// Servicios the salon offers. The code is what gets typed at the menu,
// the nombre is what gets stored on the turno.
var servicios = []Servicio{
	{"corte", "Corte de cabello"},
	{"corte y barba", "Corte + barba"},
	{"alisado", "Alisado"},
	{"tintura", "Cambio de color / Tintura"},
	{"brushing", "Brushing / Peinado"},
	{"manicuria", "Manicuria"},
	{"otros", "Otros servicios"},
}

// Default roster seeded when the professional collection starts empty
var defaultProfesionales = []string{"Carlos", "Laura", "Mónica", "Diego"}

// Disponibilidad is the availability of one professional at a slot
type Disponibilidad struct {
	Profesional models.Profesional
	Ocupado     bool
}

// Agenda holds the four collections and enforces the booking rules
type Agenda struct {
	cfg   *config.Config
	store storage.Store
	log   *logger.Logger

	clientes      []models.Cliente
	profesionales []models.Profesional
	slots         []models.Slot
	turnos        []models.Turno
}

// New bootstraps the four backing files, loads every collection into
// memory and seeds the default roster when no professionals exist yet.
func New(cfg *config.Config, store storage.Store, log *logger.Logger) (*Agenda, error) {
	a := &Agenda{
		cfg:   cfg,
		store: store,
		log:   log,
	}

	tables := []storage.Table{
		store.Clientes(), store.Profesionales(), store.Slots(), store.Turnos(),
	}
	for _, table := range tables {
		if err := table.Bootstrap(); err != nil {
			return nil, err
		}
	}

	if err := a.load(); err != nil {
		return nil, err
	}

	if len(a.profesionales) == 0 {
		a.seedProfesionales()
		if err := a.writeProfesionales(); err != nil {
			return nil, err
		}
	}

	a.log.Info("agenda cargada",
		logger.Int("clientes", len(a.clientes)),
		logger.Int("profesionales", len(a.profesionales)),
		logger.Int("turnos", len(a.turnos)))

	return a, nil
}

// load reads all four collections from the store
func (a *Agenda) load() error {
	clienteRecs, err := a.store.Clientes().Read()
	if err != nil {
		return err
	}
	profesionalRecs, err := a.store.Profesionales().Read()
	if err != nil {
		return err
	}
	slotRecs, err := a.store.Slots().Read()
	if err != nil {
		return err
	}
	turnoRecs, err := a.store.Turnos().Read()
	if err != nil {
		return err
	}

	a.clientes = a.clientes[:0]
	for _, r := range clienteRecs {
		a.clientes = append(a.clientes, models.ClienteFromRecord(r))
	}
	a.profesionales = a.profesionales[:0]
	for _, r := range profesionalRecs {
		a.profesionales = append(a.profesionales, models.ProfesionalFromRecord(r))
	}
	a.slots = a.slots[:0]
	for _, r := range slotRecs {
		a.slots = append(a.slots, models.SlotFromRecord(r))
	}
	a.turnos = a.turnos[:0]
	for _, r := range turnoRecs {
		a.turnos = append(a.turnos, models.TurnoFromRecord(r))
	}

	return nil
}

// seedProfesionales fills the default roster, ids "1".."4", all active
func (a *Agenda) seedProfesionales() {
	for i, nombre := range defaultProfesionales {
		a.profesionales = append(a.profesionales, models.Profesional{
			ID:     strconv.Itoa(i + 1),
			Nombre: nombre,
			Estado: models.EstadoActivo,
		})
	}
	a.log.Info("roster de profesionales inicializado",
		logger.Int("cantidad", len(a.profesionales)))
}

// Servicios returns the fixed service catalog in menu order
func Servicios() []Servicio {
	out := make([]Servicio, len(servicios))
	copy(out, servicios)
	return out
}

// resolveServicio maps a typed service code to its display name
func resolveServicio(input string) (string, bool) {
	code := strings.ToLower(strings.TrimSpace(input))
	for _, s := range servicios {
		if s.Code == code {
			return s.Nombre, true
		}
	}
	return "", false
}

// RegisterCliente adds a new client. The DNI must be unique. The new
// client lives in memory only until the next Flush.
func (a *Agenda) RegisterCliente(dni, nombre, apellido, email, telefono string) (models.Cliente, error) {
	const op = "register_cliente"

	if err := validation.ValidateRequired("dni", dni); err != nil {
		return models.Cliente{}, a.fail(op, err)
	}

	dni = strings.TrimSpace(dni)
	for _, c := range a.clientes {
		if c.Dni == dni {
			return models.Cliente{}, a.fail(op, errors.ErrDuplicateClient.WithContext(dni))
		}
	}

	cliente := models.Cliente{
		Dni:      dni,
		Nombre:   strings.TrimSpace(nombre),
		Apellido: strings.TrimSpace(apellido),
		Email:    strings.TrimSpace(email),
		Telefono: strings.TrimSpace(telefono),
	}
	a.clientes = append(a.clientes, cliente)

	metrics.RecordClientRegistration()
	a.log.Info("cliente registrado", logger.String("dni", dni))

	return cliente, nil
}

// FindCliente looks a client up by DNI
func (a *Agenda) FindCliente(dni string) (models.Cliente, error) {
	for _, c := range a.clientes {
		if c.Dni == dni {
			return c, nil
		}
	}
	return models.Cliente{}, errors.ErrClientNotFound.WithContext(dni)
}

// ListProfesionales returns the roster in insertion order
func (a *Agenda) ListProfesionales() []models.Profesional {
	out := make([]models.Profesional, len(a.profesionales))
	copy(out, a.profesionales)
	return out
}

// AddProfesional adds a professional to the roster with the next id.
// An empty roster starts at id "1".
func (a *Agenda) AddProfesional(nombre string) (models.Profesional, error) {
	const op = "add_profesional"

	if err := validation.ValidateRequired("nombre", nombre); err != nil {
		return models.Profesional{}, a.fail(op, err)
	}

	prof := models.Profesional{
		ID:     a.nextProfesionalID(),
		Nombre: strings.TrimSpace(nombre),
		Estado: models.EstadoActivo,
	}
	a.profesionales = append(a.profesionales, prof)

	a.log.Info("profesional agregado",
		logger.String("id", prof.ID), logger.String("nombre", prof.Nombre))

	return prof, nil
}

// ToggleProfesional flips a professional between activo and inactivo
func (a *Agenda) ToggleProfesional(id string) (models.Profesional, error) {
	const op = "toggle_profesional"

	for i := range a.profesionales {
		if a.profesionales[i].ID != id {
			continue
		}
		if a.profesionales[i].Activo() {
			a.profesionales[i].Estado = models.EstadoInactivo
		} else {
			a.profesionales[i].Estado = models.EstadoActivo
		}
		a.log.Info("estado de profesional cambiado",
			logger.String("id", id),
			logger.String("estado", a.profesionales[i].Estado))
		return a.profesionales[i], nil
	}

	return models.Profesional{}, a.fail(op, errors.ErrNotFound.WithContext(id))
}

// Availability reports, for each active professional, whether the given
// slot is already taken. The same validation as RequestTurno applies.
func (a *Agenda) Availability(fecha, hora string) ([]Disponibilidad, error) {
	const op = "availability"

	if err := a.validateSlotRequest(fecha, hora); err != nil {
		return nil, a.fail(op, err)
	}

	var out []Disponibilidad
	for _, p := range a.profesionales {
		if !p.Activo() {
			continue
		}
		out = append(out, Disponibilidad{
			Profesional: p,
			Ocupado:     a.ocupado(p.ID, fecha, hora),
		})
	}
	return out, nil
}

// RequestTurno books an appointment. The first active professional in
// roster order without a turno at (fecha, hora) gets the booking; there
// is no load balancing. On success all four collections are persisted.
func (a *Agenda) RequestTurno(dni, servicio, fecha, hora string) (models.Turno, error) {
	const op = "request_turno"

	cliente, err := a.FindCliente(dni)
	if err != nil {
		return models.Turno{}, a.fail(op, err)
	}

	nombreServicio, ok := resolveServicio(servicio)
	if !ok {
		return models.Turno{}, a.fail(op, errors.ErrInvalidInput.WithContext(map[string]interface{}{
			"field": "servicio",
			"value": servicio,
		}))
	}

	if err := a.validateSlotRequest(fecha, hora); err != nil {
		return models.Turno{}, a.fail(op, err)
	}

	var elegido *models.Profesional
	for i := range a.profesionales {
		p := &a.profesionales[i]
		if !p.Activo() || a.ocupado(p.ID, fecha, hora) {
			continue
		}
		elegido = p
		break
	}
	if elegido == nil {
		metrics.RecordAvailabilityMiss()
		return models.Turno{}, a.fail(op, errors.ErrNoAvailability.WithContext(map[string]interface{}{
			"fecha": fecha,
			"hora":  hora,
		}))
	}

	a.markSlot(elegido.ID, fecha, hora, models.SlotOcupado)

	turno := models.Turno{
		ID:            a.nextTurnoID(),
		ClienteDni:    cliente.Dni,
		ProfesionalID: elegido.ID,
		Fecha:         fecha,
		Hora:          hora,
		Servicio:      nombreServicio,
	}
	a.turnos = append(a.turnos, turno)

	if err := a.Flush(); err != nil {
		return models.Turno{}, err
	}

	metrics.RecordTurnoCreated()
	a.log.Info("turno confirmado",
		logger.String("id", turno.ID),
		logger.String("cliente", cliente.Dni),
		logger.String("profesional", elegido.Nombre),
		logger.String("fecha", fecha),
		logger.String("hora", hora))

	return turno, nil
}

// ListTurnos returns all turnos, or only those on fecha when it is not
// empty, each joined with the client and professional display names.
// Turnos whose references no longer resolve are omitted.
func (a *Agenda) ListTurnos(fecha string) []models.TurnoView {
	var out []models.TurnoView
	for _, t := range a.turnos {
		if fecha != "" && t.Fecha != fecha {
			continue
		}
		view, ok := a.turnoView(t)
		if !ok {
			continue
		}
		out = append(out, view)
	}
	return out
}

// GetTurno returns one turno by id, joined with display names
func (a *Agenda) GetTurno(id string) (models.TurnoView, error) {
	for _, t := range a.turnos {
		if t.ID != id {
			continue
		}
		view, ok := a.turnoView(t)
		if !ok {
			// Dangling references render as empty names
			view = models.TurnoView{Turno: t}
		}
		return view, nil
	}
	return models.TurnoView{}, errors.ErrNotFound.WithContext(id)
}

// CancelTurno removes a turno and frees its slot, then persists
func (a *Agenda) CancelTurno(id string) error {
	const op = "cancel_turno"

	for i, t := range a.turnos {
		if t.ID != id {
			continue
		}
		a.turnos = append(a.turnos[:i], a.turnos[i+1:]...)
		a.markSlot(t.ProfesionalID, t.Fecha, t.Hora, models.SlotLibre)

		if err := a.Flush(); err != nil {
			return err
		}

		metrics.RecordTurnoCancelled()
		a.log.Info("turno cancelado", logger.String("id", id))
		return nil
	}

	return a.fail(op, errors.ErrNotFound.WithContext(id))
}

// UpdateTurnoServicio overwrites the service of a turno, then persists.
// Unlike RequestTurno this takes free text, as the original flow did.
func (a *Agenda) UpdateTurnoServicio(id, nuevoServicio string) (models.Turno, error) {
	const op = "update_turno_servicio"

	if err := validation.ValidateRequired("servicio", nuevoServicio); err != nil {
		return models.Turno{}, a.fail(op, err)
	}

	for i := range a.turnos {
		if a.turnos[i].ID != id {
			continue
		}
		a.turnos[i].Servicio = strings.TrimSpace(nuevoServicio)

		if err := a.Flush(); err != nil {
			return models.Turno{}, err
		}

		metrics.RecordTurnoUpdated()
		a.log.Info("servicio de turno actualizado", logger.String("id", id))
		return a.turnos[i], nil
	}

	return models.Turno{}, a.fail(op, errors.ErrNotFound.WithContext(id))
}

// Flush writes all four collections to their backing files
func (a *Agenda) Flush() error {
	clienteRecs := make([]models.Record, 0, len(a.clientes))
	for _, c := range a.clientes {
		clienteRecs = append(clienteRecs, c.ToRecord())
	}
	if err := a.store.Clientes().Write(clienteRecs); err != nil {
		return err
	}

	if err := a.writeProfesionales(); err != nil {
		return err
	}

	slotRecs := make([]models.Record, 0, len(a.slots))
	for _, s := range a.slots {
		slotRecs = append(slotRecs, s.ToRecord())
	}
	if err := a.store.Slots().Write(slotRecs); err != nil {
		return err
	}

	turnoRecs := make([]models.Record, 0, len(a.turnos))
	for _, t := range a.turnos {
		turnoRecs = append(turnoRecs, t.ToRecord())
	}
	return a.store.Turnos().Write(turnoRecs)
}

// validateSlotRequest runs the shared fecha/hora pipeline: parseable
// date, open day, bookable hour.
func (a *Agenda) validateSlotRequest(fecha, hora string) error {
	parsed, err := validation.ValidateFecha(fecha)
	if err != nil {
		return err
	}

	if a.cfg.IsClosedDay(parsed.Weekday()) {
		return errors.ErrClosedDay.WithContext(map[string]interface{}{
			"fecha":   fecha,
			"weekday": parsed.Weekday().String(),
		})
	}

	return validation.ValidateHora(hora, a.cfg.Horarios())
}

// ocupado derives occupancy from the turno collection alone. Slot
// records are a cached view and never gate a booking.
func (a *Agenda) ocupado(profesionalID, fecha, hora string) bool {
	for _, t := range a.turnos {
		if t.Occupies(profesionalID, fecha, hora) {
			return true
		}
	}
	return false
}

// markSlot lazily creates the slot for a triple and sets its flag
func (a *Agenda) markSlot(profesionalID, fecha, hora, disponible string) {
	for i := range a.slots {
		if a.slots[i].Matches(profesionalID, fecha, hora) {
			a.slots[i].Disponible = disponible
			return
		}
	}
	a.slots = append(a.slots, models.Slot{
		ProfesionalID: profesionalID,
		Fecha:         fecha,
		Hora:          hora,
		Disponible:    disponible,
	})
}

// turnoView joins a turno with its client and professional names
func (a *Agenda) turnoView(t models.Turno) (models.TurnoView, bool) {
	var clienteNombre, profesionalNombre string

	for _, c := range a.clientes {
		if c.Dni == t.ClienteDni {
			clienteNombre = c.NombreCompleto()
			break
		}
	}
	for _, p := range a.profesionales {
		if p.ID == t.ProfesionalID {
			profesionalNombre = p.Nombre
			break
		}
	}

	if clienteNombre == "" || profesionalNombre == "" {
		return models.TurnoView{}, false
	}

	return models.TurnoView{
		Turno:             t,
		ClienteNombre:     clienteNombre,
		ProfesionalNombre: profesionalNombre,
	}, true
}

// writeProfesionales persists just the roster
func (a *Agenda) writeProfesionales() error {
	recs := make([]models.Record, 0, len(a.profesionales))
	for _, p := range a.profesionales {
		recs = append(recs, p.ToRecord())
	}
	return a.store.Profesionales().Write(recs)
}

// nextProfesionalID allocates max(existing)+1 as a numeric string
func (a *Agenda) nextProfesionalID() string {
	max := 0
	for _, p := range a.profesionales {
		if n, err := strconv.Atoi(p.ID); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%d", max+1)
}

// nextTurnoID allocates max(existing)+1 as a numeric string
func (a *Agenda) nextTurnoID() string {
	max := 0
	for _, t := range a.turnos {
		if n, err := strconv.Atoi(t.ID); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%d", max+1)
}

// fail records the business error metric and passes the error through
func (a *Agenda) fail(op string, err error) error {
	if salonErr, ok := errors.GetSalonError(err); ok {
		metrics.RecordError(op, salonErr.Code)
	}
	return err
}
