package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"salon_turnos/internal/storage/models"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clients.csv")
	return New(path, models.ClienteFields)
}

func TestRead_MissingFile(t *testing.T) {
	table := testTable(t)

	records, err := table.Read()
	if err != nil {
		t.Fatalf("Read on missing file should not fail: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

func TestBootstrap_CreatesHeaderOnlyFile(t *testing.T) {
	table := testTable(t)

	if err := table.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	data, err := os.ReadFile(table.path)
	if err != nil {
		t.Fatalf("Failed to read bootstrapped file: %v", err)
	}
	if string(data) != "dni,nombre,apellido,email,telefono\n" {
		t.Errorf("Unexpected file contents: %q", string(data))
	}

	// Header-only file reads as empty data
	records, err := table.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records from header-only file, got %d", len(records))
	}
}

func TestBootstrap_LeavesExistingFileAlone(t *testing.T) {
	table := testTable(t)

	records := []models.Record{
		{"dni": "111", "nombre": "Ana", "apellido": "Gómez", "email": "a@b.c", "telefono": "555"},
	}
	if err := table.Write(records); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := table.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	got, err := table.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Bootstrap truncated an existing file: got %d records", len(got))
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	table := testTable(t)

	records := []models.Record{
		{"dni": "111", "nombre": "Ana", "apellido": "Gómez", "email": "ana@mail.com", "telefono": "555-0001"},
		{"dni": "222", "nombre": "Luis", "apellido": "Pérez", "email": "luis@mail.com", "telefono": "555-0002"},
	}

	if err := table.Write(records); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := table.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(got) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(got))
	}
	for i, rec := range records {
		for _, field := range models.ClienteFields {
			if got[i][field] != rec[field] {
				t.Errorf("Record %d field %s: expected %q, got %q",
					i, field, rec[field], got[i][field])
			}
		}
	}
}

func TestWrite_EmptyIsNoOp(t *testing.T) {
	table := testTable(t)

	records := []models.Record{
		{"dni": "111", "nombre": "Ana", "apellido": "Gómez", "email": "a@b.c", "telefono": "555"},
	}
	if err := table.Write(records); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	before, err := os.ReadFile(table.path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	if err := table.Write(nil); err != nil {
		t.Fatalf("Empty write failed: %v", err)
	}

	after, err := os.ReadFile(table.path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(before) != string(after) {
		t.Errorf("Empty write altered the file:\nbefore: %q\nafter: %q", before, after)
	}
}

func TestWrite_MissingFieldsSerializeEmpty(t *testing.T) {
	table := testTable(t)

	if err := table.Write([]models.Record{{"dni": "111", "nombre": "Ana"}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(table.path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	expected := "dni,nombre,apellido,email,telefono\n111,Ana,,,\n"
	if string(data) != expected {
		t.Errorf("Expected %q, got %q", expected, string(data))
	}
}

func TestRead_DropsShortLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.csv")
	contents := "dni,nombre,apellido,email,telefono\n" +
		"111,Ana,Gómez,ana@mail.com,555-0001\n" +
		"222,Luis\n" + // too few fields, must be dropped
		"333,Marta,Ruiz,marta@mail.com,555-0003\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	table := New(path, models.ClienteFields)
	records, err := table.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records after dropping the short line, got %d", len(records))
	}
	if records[0]["dni"] != "111" || records[1]["dni"] != "333" {
		t.Errorf("Unexpected records kept: %v", records)
	}
}

func TestRead_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profesionales.csv")
	contents := " id , nombre , estado \n 1 , Carlos , activo \n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	table := New(path, models.ProfesionalFields)
	records, err := table.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0]["id"] != "1" || records[0]["nombre"] != "Carlos" || records[0]["estado"] != "activo" {
		t.Errorf("Fields not trimmed: %v", records[0])
	}
}

func TestRead_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turns.csv")
	contents := "id,cliente_dni,profesional_id,fecha,hora,servicio\n" +
		"\n" +
		"1,111,1,2024-06-11,10:00,Corte de cabello\n" +
		"   \n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	table := New(path, models.TurnoFields)
	records, err := table.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
}
