package validation

import (
	"regexp"
	"strings"
	"time"

	"salon_turnos/pkg/errors"
)

// Validation regular expressions
var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// DateLayout is the textual form dates keep on disk
const DateLayout = "2006-01-02"

// ValidateFecha validates a date in YYYY-MM-DD format and returns its
// parsed value. The parsed time is used transiently for weekday checks
// only; the string form is what gets stored.
func ValidateFecha(fecha string) (time.Time, error) {
	if fecha == "" {
		return time.Time{}, errors.ErrInvalidDate.WithContext("la fecha no puede estar vacía")
	}

	if !dateRegex.MatchString(fecha) {
		return time.Time{}, errors.ErrInvalidDate.WithContext(map[string]interface{}{
			"fecha":  fecha,
			"reason": "la fecha debe tener formato YYYY-MM-DD",
		})
	}

	parsed, err := time.Parse(DateLayout, fecha)
	if err != nil {
		return time.Time{}, errors.ErrInvalidDate.WithError(err).WithContext(map[string]interface{}{
			"fecha": fecha,
		})
	}

	return parsed, nil
}

// ValidateHora validates that an hour is one of the bookable slots
// ("10:00".."17:00" with the default schedule, on the hour only).
func ValidateHora(hora string, horarios []string) error {
	if hora == "" {
		return errors.ErrInvalidTime.WithContext("la hora no puede estar vacía")
	}

	if !timeRegex.MatchString(hora) {
		return errors.ErrInvalidTime.WithContext(map[string]interface{}{
			"hora":   hora,
			"reason": "la hora debe tener formato HH:MM",
		})
	}

	for _, h := range horarios {
		if h == hora {
			return nil
		}
	}

	return errors.ErrInvalidTime.WithContext(map[string]interface{}{
		"hora":   hora,
		"reason": "horario fuera de los turnos posibles",
	})
}

// ValidateRequired validates that a field is present after trimming
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.ErrInvalidInput.WithContext(map[string]interface{}{
			"field": field,
		})
	}
	return nil
}
