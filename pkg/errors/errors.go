package errors

import "fmt"

// SalonError is a business error with a stable code and optional context.
type SalonError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Err     error       `json:"-"`
	Context interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *SalonError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap enables errors.Is and errors.As
func (e *SalonError) Unwrap() error {
	return e.Err
}

// Is matches SalonErrors by code, so the predefined vars keep working as
// errors.Is targets after WithContext/WithError copies.
func (e *SalonError) Is(target error) bool {
	t, ok := target.(*SalonError)
	return ok && t.Code == e.Code
}

// WithContext returns a copy of the error carrying extra context
func (e *SalonError) WithContext(ctx interface{}) *SalonError {
	return &SalonError{
		Code:    e.Code,
		Message: e.Message,
		Err:     e.Err,
		Context: ctx,
	}
}

// WithError returns a copy of the error carrying the underlying cause
func (e *SalonError) WithError(err error) *SalonError {
	return &SalonError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
		Context: e.Context,
	}
}

// Predefined errors
var (
	// Client errors
	ErrDuplicateClient = &SalonError{
		Code:    "DUPLICATE_CLIENT",
		Message: "el cliente ya existe",
	}

	ErrClientNotFound = &SalonError{
		Code:    "CLIENT_NOT_FOUND",
		Message: "cliente no encontrado",
	}

	// Booking errors
	ErrInvalidDate = &SalonError{
		Code:    "INVALID_DATE",
		Message: "fecha inválida",
	}

	ErrClosedDay = &SalonError{
		Code:    "CLOSED_DAY",
		Message: "la peluquería está cerrada ese día",
	}

	ErrInvalidTime = &SalonError{
		Code:    "INVALID_TIME",
		Message: "hora inválida",
	}

	ErrNoAvailability = &SalonError{
		Code:    "NO_AVAILABILITY",
		Message: "no hay disponibilidad en ese horario",
	}

	// Lookup / input errors
	ErrNotFound = &SalonError{
		Code:    "NOT_FOUND",
		Message: "registro no encontrado",
	}

	ErrInvalidInput = &SalonError{
		Code:    "INVALID_INPUT",
		Message: "dato requerido vacío o inválido",
	}

	// System errors
	ErrStorage = &SalonError{
		Code:    "STORAGE",
		Message: "error de almacenamiento",
	}

	ErrConfigurationInvalid = &SalonError{
		Code:    "CONFIGURATION_INVALID",
		Message: "configuración inválida",
	}
)

// New creates a new salon error
func New(code, message string) *SalonError {
	return &SalonError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps a plain error into a SalonError
func Wrap(err error, code, message string) *SalonError {
	return &SalonError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetSalonError extracts a SalonError from an error
func GetSalonError(err error) (*SalonError, bool) {
	salonErr, ok := err.(*SalonError)
	return salonErr, ok
}
