package validation

import (
	"errors"
	"testing"
	"time"

	salonerrors "salon_turnos/pkg/errors"
)

var horarios = []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

func TestValidateFecha(t *testing.T) {
	tests := []struct {
		name    string
		fecha   string
		wantErr bool
	}{
		{"valid date", "2024-06-11", false},
		{"empty", "", true},
		{"wrong separator", "2024/06/11", true},
		{"wrong order", "11-06-2024", true},
		{"nonexistent date", "2024-02-30", true},
		{"month out of range", "2024-13-01", true},
		{"garbage", "mañana", true},
		{"missing padding", "2024-6-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ValidateFecha(tt.fecha)
			if tt.wantErr {
				if !errors.Is(err, salonerrors.ErrInvalidDate) {
					t.Errorf("Expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if parsed.Format(DateLayout) != tt.fecha {
				t.Errorf("Parsed date does not round trip: %s", parsed.Format(DateLayout))
			}
		})
	}
}

func TestValidateFecha_Weekday(t *testing.T) {
	parsed, err := ValidateFecha("2024-06-11")
	if err != nil {
		t.Fatalf("ValidateFecha failed: %v", err)
	}
	if parsed.Weekday() != time.Tuesday {
		t.Errorf("2024-06-11 should be a Tuesday, got %s", parsed.Weekday())
	}
}

func TestValidateHora(t *testing.T) {
	tests := []struct {
		name    string
		hora    string
		wantErr bool
	}{
		{"opening hour", "10:00", false},
		{"last slot", "17:00", false},
		{"empty", "", true},
		{"closing hour", "18:00", true},
		{"before opening", "09:00", true},
		{"half hour", "10:30", true},
		{"no padding", "9:00", true},
		{"garbage", "mediodía", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHora(tt.hora, horarios)
			if tt.wantErr {
				if !errors.Is(err, salonerrors.ErrInvalidTime) {
					t.Errorf("Expected ErrInvalidTime, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("dni", "111"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := ValidateRequired("dni", "   "); !errors.Is(err, salonerrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for blank value, got %v", err)
	}
	if err := ValidateRequired("dni", ""); !errors.Is(err, salonerrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty value, got %v", err)
	}
}
