package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"salon_turnos/pkg/errors"
)

// Config holds the whole application configuration
type Config struct {
	Storage  StorageConfig  `json:"storage"`
	Schedule ScheduleConfig `json:"schedule"`
}

// StorageConfig holds the data directory and the four backing file names
type StorageConfig struct {
	DataDir           string `json:"data_dir"`
	ClientsFile       string `json:"clients_file"`
	ProfesionalesFile string `json:"profesionales_file"`
	SlotsFile         string `json:"slots_file"`
	TurnosFile        string `json:"turnos_file"`
}

// ScheduleConfig holds the salon opening schedule
type ScheduleConfig struct {
	WorkStart string `json:"work_start"` // first bookable hour, HH:MM
	WorkEnd   string `json:"work_end"`   // closing hour, exclusive
	// Weekdays the salon does not open. The salon works Tuesday to
	// Saturday, so Sunday and Monday are closed by default.
	ClosedDays []time.Weekday `json:"closed_days"`
}

// Load reads configuration from a .env file (if present) and environment
// variables, falling back to defaults.
func Load() (*Config, error) {
	// A missing .env file is fine, env vars still apply
	_ = godotenv.Load()

	cfg := &Config{
		Storage: StorageConfig{
			DataDir:           getEnv("SALON_DATA_DIR", "."),
			ClientsFile:       getEnv("SALON_CLIENTS_FILE", "clients.csv"),
			ProfesionalesFile: getEnv("SALON_PROFESIONALES_FILE", "profesionales.csv"),
			SlotsFile:         getEnv("SALON_SLOTS_FILE", "slots.csv"),
			TurnosFile:        getEnv("SALON_TURNOS_FILE", "turns.csv"),
		},
		Schedule: ScheduleConfig{
			WorkStart:  getEnv("WORK_START", "10:00"),
			WorkEnd:    getEnv("WORK_END", "18:00"),
			ClosedDays: []time.Weekday{time.Sunday, time.Monday},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ErrConfigurationInvalid.WithError(err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("SALON_DATA_DIR must not be empty")
	}

	start, err := time.Parse("15:04", c.Schedule.WorkStart)
	if err != nil {
		return fmt.Errorf("invalid WORK_START format (expected HH:MM): %w", err)
	}
	end, err := time.Parse("15:04", c.Schedule.WorkEnd)
	if err != nil {
		return fmt.Errorf("invalid WORK_END format (expected HH:MM): %w", err)
	}
	if !start.Before(end) {
		return fmt.Errorf("WORK_START must be before WORK_END")
	}

	return nil
}

// Horarios returns the bookable on-the-hour slots, from WorkStart up to
// but not including WorkEnd ("10:00" .. "17:00" with the defaults).
func (c *Config) Horarios() []string {
	start, _ := time.Parse("15:04", c.Schedule.WorkStart)
	end, _ := time.Parse("15:04", c.Schedule.WorkEnd)

	var horarios []string
	for h := start.Hour(); h < end.Hour(); h++ {
		horarios = append(horarios, fmt.Sprintf("%02d:00", h))
	}
	return horarios
}

// IsClosedDay reports whether the salon is closed on the given weekday
func (c *Config) IsClosedDay(day time.Weekday) bool {
	for _, d := range c.Schedule.ClosedDays {
		if d == day {
			return true
		}
	}
	return false
}

// ClientsPath returns the full path of the clients file
func (c *Config) ClientsPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.ClientsFile)
}

// ProfesionalesPath returns the full path of the professionals file
func (c *Config) ProfesionalesPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.ProfesionalesFile)
}

// SlotsPath returns the full path of the slots file
func (c *Config) SlotsPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.SlotsFile)
}

// TurnosPath returns the full path of the turnos file
func (c *Config) TurnosPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.TurnosFile)
}

// getEnv gets an environment variable or returns the fallback
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
