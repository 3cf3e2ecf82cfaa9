package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestSalonError_Format(t *testing.T) {
	if got := ErrDuplicateClient.Error(); got != "DUPLICATE_CLIENT: el cliente ya existe" {
		t.Errorf("Unexpected error string: %q", got)
	}

	wrapped := ErrStorage.WithError(fmt.Errorf("disk full"))
	if !strings.Contains(wrapped.Error(), "disk full") {
		t.Errorf("Cause missing from error string: %q", wrapped.Error())
	}
}

func TestSalonError_IsMatchesByCode(t *testing.T) {
	err := ErrNoAvailability.WithContext(map[string]interface{}{"fecha": "2024-06-11"})
	if !stderrors.Is(err, ErrNoAvailability) {
		t.Error("WithContext copy should still match the predefined error")
	}

	err = ErrNotFound.WithError(fmt.Errorf("turno 42"))
	if !stderrors.Is(err, ErrNotFound) {
		t.Error("WithError copy should still match the predefined error")
	}

	if stderrors.Is(ErrNotFound, ErrClientNotFound) {
		t.Error("Different codes must not match")
	}
}

func TestSalonError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(cause, "STORAGE", "error de almacenamiento")

	if !stderrors.Is(err, cause) {
		t.Error("Wrapped cause should be reachable through errors.Is")
	}
}

func TestGetSalonError(t *testing.T) {
	if _, ok := GetSalonError(ErrClosedDay); !ok {
		t.Error("Expected extraction from a SalonError")
	}
	if _, ok := GetSalonError(fmt.Errorf("plain")); ok {
		t.Error("Plain errors must not extract")
	}
}
