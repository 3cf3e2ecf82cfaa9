// Package flatfile persists record collections as delimited text files
// with a header row. The file layout is the system's external interface:
// values are written verbatim, with no quoting or escaping of the
// delimiter, so a value containing "," will corrupt its row. encoding/csv
// is deliberately not used because it would quote such values and change
// the format on disk.
package flatfile

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"salon_turnos/internal/storage"
	"salon_turnos/internal/storage/models"
	"salon_turnos/pkg/errors"
	"salon_turnos/pkg/metrics"
)

// Delimiter separates fields within a line
const Delimiter = ","

// Table is one collection backed by a single delimited text file
type Table struct {
	path   string
	fields []string
	name   string
}

// New creates a table bound to a file and the collection's declared
// field list. The declared list seeds a fresh file's header and fixes
// the write order; reads follow whatever header the file actually has.
func New(path string, fields []string) *Table {
	return &Table{
		path:   path,
		fields: fields,
		name:   filepath.Base(path),
	}
}

// Bootstrap creates the backing file with only the header row when it
// does not exist. An existing file is left alone.
func (t *Table) Bootstrap() error {
	if _, err := os.Stat(t.path); err == nil {
		return nil
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return errors.ErrStorage.WithError(err).WithContext(t.path)
	}

	header := strings.Join(t.fields, Delimiter) + "\n"
	if err := os.WriteFile(t.path, []byte(header), 0644); err != nil {
		metrics.RecordStorageOperation("bootstrap", t.name, "error")
		return errors.ErrStorage.WithError(err).WithContext(t.path)
	}

	metrics.RecordStorageOperation("bootstrap", t.name, "ok")
	return nil
}

// Read loads every record in the file. A missing file is valid "no data
// yet" state and reads as an empty collection. Lines with fewer values
// than the header are dropped silently; values beyond the header length
// are ignored. Every field is whitespace-trimmed.
func (t *Table) Read() ([]models.Record, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		metrics.RecordStorageOperation("read", t.name, "error")
		return nil, errors.ErrStorage.WithError(err).WithContext(t.path)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) <= 1 {
		metrics.RecordStorageOperation("read", t.name, "ok")
		return nil, nil
	}

	keys := splitTrimmed(lines[0])

	var records []models.Record
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitTrimmed(line)
		if len(values) < len(keys) {
			// Lenient parse: a short line yields no record
			continue
		}
		record := make(models.Record, len(keys))
		for i, key := range keys {
			record[key] = values[i]
		}
		records = append(records, record)
	}

	metrics.RecordStorageOperation("read", t.name, "ok")
	return records, nil
}

// Write overwrites the file with the given records in the declared field
// order. Missing fields serialize as empty strings. Writing an empty set
// is a no-op: the existing file keeps its previous contents, so an
// emptied collection only reaches disk once it has records again.
func (t *Table) Write(recs []models.Record) error {
	if len(recs) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(strings.Join(t.fields, Delimiter))
	b.WriteString("\n")

	values := make([]string, len(t.fields))
	for _, rec := range recs {
		for i, field := range t.fields {
			values[i] = rec[field]
		}
		b.WriteString(strings.Join(values, Delimiter))
		b.WriteString("\n")
	}

	if err := os.WriteFile(t.path, []byte(b.String()), 0644); err != nil {
		metrics.RecordStorageOperation("write", t.name, "error")
		return errors.ErrStorage.WithError(err).WithContext(t.path)
	}

	metrics.RecordStorageOperation("write", t.name, "ok")
	return nil
}

// splitTrimmed splits a line on the delimiter and trims each field
func splitTrimmed(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), Delimiter)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Store groups the four salon collections
type Store struct {
	clientes      *Table
	profesionales *Table
	slots         *Table
	turnos        *Table
}

// NewStore builds the flat-file store over the four backing files
func NewStore(clientesPath, profesionalesPath, slotsPath, turnosPath string) *Store {
	return &Store{
		clientes:      New(clientesPath, models.ClienteFields),
		profesionales: New(profesionalesPath, models.ProfesionalFields),
		slots:         New(slotsPath, models.SlotFields),
		turnos:        New(turnosPath, models.TurnoFields),
	}
}

// Clientes returns the clients table
func (s *Store) Clientes() storage.Table { return s.clientes }

// Profesionales returns the professionals table
func (s *Store) Profesionales() storage.Table { return s.profesionales }

// Slots returns the slots table
func (s *Store) Slots() storage.Table { return s.slots }

// Turnos returns the turnos table
func (s *Store) Turnos() storage.Table { return s.turnos }
