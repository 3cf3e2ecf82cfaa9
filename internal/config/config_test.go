package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.ClientsFile != "clients.csv" {
		t.Errorf("Unexpected default clients file: %s", cfg.Storage.ClientsFile)
	}
	if cfg.Schedule.WorkStart != "10:00" || cfg.Schedule.WorkEnd != "18:00" {
		t.Errorf("Unexpected default schedule: %s-%s",
			cfg.Schedule.WorkStart, cfg.Schedule.WorkEnd)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SALON_DATA_DIR", "/tmp/salon")
	t.Setenv("WORK_START", "09:00")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.DataDir != "/tmp/salon" {
		t.Errorf("SALON_DATA_DIR not applied: %s", cfg.Storage.DataDir)
	}
	if cfg.Schedule.WorkStart != "09:00" {
		t.Errorf("WORK_START not applied: %s", cfg.Schedule.WorkStart)
	}
	if got := cfg.ClientsPath(); got != filepath.Join("/tmp/salon", "clients.csv") {
		t.Errorf("Unexpected clients path: %s", got)
	}
}

func TestLoad_InvalidWorkStart(t *testing.T) {
	t.Setenv("WORK_START", "diez")

	if _, err := Load(); err == nil {
		t.Fatal("Expected validation error for malformed WORK_START")
	}
}

func TestValidate_StartAfterEnd(t *testing.T) {
	t.Setenv("WORK_START", "19:00")

	if _, err := Load(); err == nil {
		t.Fatal("Expected validation error when WORK_START is after WORK_END")
	}
}

func TestHorarios(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	horarios := cfg.Horarios()
	expected := []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
	if len(horarios) != len(expected) {
		t.Fatalf("Expected %d horarios, got %d", len(expected), len(horarios))
	}
	for i, h := range expected {
		if horarios[i] != h {
			t.Errorf("Horario %d: expected %s, got %s", i, h, horarios[i])
		}
	}
}

func TestIsClosedDay(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.IsClosedDay(time.Sunday) || !cfg.IsClosedDay(time.Monday) {
		t.Error("Sunday and Monday should be closed")
	}
	for _, d := range []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday} {
		if cfg.IsClosedDay(d) {
			t.Errorf("%s should be open", d)
		}
	}
}
