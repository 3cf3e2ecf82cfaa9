package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"salon_turnos/internal/agenda"
	"salon_turnos/internal/config"
	"salon_turnos/internal/storage/flatfile"
	"salon_turnos/pkg/errors"
	"salon_turnos/pkg/logger"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(logger.LevelInfo)
	appLogger.Info("configuración cargada",
		logger.String("data_dir", cfg.Storage.DataDir))

	store := flatfile.NewStore(
		cfg.ClientsPath(),
		cfg.ProfesionalesPath(),
		cfg.SlotsPath(),
		cfg.TurnosPath(),
	)

	salon, err := agenda.New(cfg, store, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize agenda: %v", err)
	}

	// Flush on Ctrl+C so an interrupted session still saves
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		appLogger.Info("señal recibida, guardando datos")
		if err := salon.Flush(); err != nil {
			appLogger.Error("error al guardar", logger.Error(err))
			os.Exit(1)
		}
		os.Exit(0)
	}()

	menu := &Menu{
		salon:  salon,
		cfg:    cfg,
		reader: bufio.NewScanner(os.Stdin),
	}
	menu.Run()
}

// Menu drives the console flow. It only calls agenda operations and
// renders their results; it never touches the files or the collections.
type Menu struct {
	salon  *agenda.Agenda
	cfg    *config.Config
	reader *bufio.Scanner
}

// Run shows the main menu until the user exits
func (m *Menu) Run() {
	for {
		fmt.Println("\n" + strings.Repeat("=", 50))
		fmt.Println("    SISTEMA DE TURNOS - PELUQUERÍA")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println("1. Registrar cliente")
		fmt.Println("2. Solicitar turno")
		fmt.Println("3. Listar turnos")
		fmt.Println("4. Modificar/Cancelar turno")
		fmt.Println("5. Gestionar profesionales")
		fmt.Println("6. Guardar y salir")
		fmt.Println("7. Salir sin guardar")

		switch m.prompt("\n→ Elija una opción: ") {
		case "1":
			m.registrarCliente()
		case "2":
			m.solicitarTurno()
		case "3":
			m.listarTurnos()
		case "4":
			m.modificarCancelarTurno()
		case "5":
			m.gestionarProfesionales()
		case "6":
			if err := m.salon.Flush(); err != nil {
				fmt.Println("Error al guardar:", err)
				continue
			}
			fmt.Println("¡Datos guardados! Hasta luego")
			return
		case "7":
			fmt.Println("Saliendo sin guardar...")
			return
		}
	}
}

func (m *Menu) registrarCliente() {
	fmt.Println("\n--- REGISTRAR CLIENTE ---")
	dni := m.prompt("DNI: ")
	nombre := m.prompt("Nombre: ")
	apellido := m.prompt("Apellido: ")
	email := m.prompt("Email: ")
	telefono := m.prompt("Teléfono: ")

	if _, err := m.salon.RegisterCliente(dni, nombre, apellido, email, telefono); err != nil {
		m.printError(err)
		return
	}
	if err := m.salon.Flush(); err != nil {
		m.printError(err)
		return
	}
	fmt.Println("Cliente registrado con éxito")
}

func (m *Menu) solicitarTurno() {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("        SOLICITAR TURNO")
	fmt.Println(strings.Repeat("=", 50))

	fmt.Println("SERVICIOS DISPONIBLES:")
	for _, s := range agenda.Servicios() {
		fmt.Printf("   • %s  →  escriba: %s\n", s.Nombre, s.Code)
	}
	fmt.Printf("\nDÍAS QUE ATENDEMOS: Martes a Sábado\n")
	fmt.Printf("HORARIO: %s a %s\n", m.cfg.Schedule.WorkStart, m.cfg.Schedule.WorkEnd)
	fmt.Println("Horarios disponibles:", strings.Join(m.cfg.Horarios(), ", "))
	fmt.Println(strings.Repeat("-", 50))

	dni := m.prompt("DNI del cliente: ")
	cliente, err := m.salon.FindCliente(dni)
	if err != nil {
		fmt.Println("Cliente no encontrado. Regístrelo primero.")
		return
	}
	fmt.Printf("\nCliente encontrado: %s\n", cliente.NombreCompleto())

	servicio := m.prompt("\nServicio (ej: corte, alisado, etc): ")
	fecha := m.prompt("Fecha (YYYY-MM-DD): ")
	hora := m.prompt("Hora (HH:00): ")

	// Availability preview per professional before assigning
	if disponibilidad, err := m.salon.Availability(fecha, hora); err == nil {
		fmt.Printf("\nBuscando disponibilidad para %s a las %s...\n", fecha, hora)
		for _, d := range disponibilidad {
			estado := "DISPONIBLE"
			if d.Ocupado {
				estado = "OCUPADO"
			}
			fmt.Printf("   • %s → %s\n", d.Profesional.Nombre, estado)
		}
	}

	turno, err := m.salon.RequestTurno(dni, servicio, fecha, hora)
	if err != nil {
		m.printError(err)
		return
	}

	view, _ := m.salon.GetTurno(turno.ID)
	fmt.Println("\n¡TURNO CONFIRMADO!")
	fmt.Printf("Cliente: %s\n", cliente.NombreCompleto())
	fmt.Printf("Profesional: %s\n", view.ProfesionalNombre)
	fmt.Printf("Fecha: %s - %s\n", turno.Fecha, turno.Hora)
	fmt.Printf("Servicio: %s\n", turno.Servicio)
	fmt.Printf("ID del turno: %s\n", turno.ID)
}

func (m *Menu) listarTurnos() {
	fmt.Println("\n--- LISTADO DE TURNOS ---")
	fecha := m.prompt("Fecha para filtrar (dejar vacío para todos): ")

	turnos := m.salon.ListTurnos(fecha)
	if len(turnos) == 0 {
		fmt.Println("No hay turnos registrados.")
		return
	}
	for _, t := range turnos {
		fmt.Printf("[%s] %s %s → %s con %s | %s\n",
			t.ID, t.Fecha, t.Hora, t.ClienteNombre, t.ProfesionalNombre, t.Servicio)
	}
}

func (m *Menu) modificarCancelarTurno() {
	id := m.prompt("ID del turno a modificar/cancelar: ")
	turno, err := m.salon.GetTurno(id)
	if err != nil {
		fmt.Println("Turno no encontrado")
		return
	}

	fmt.Println("\nTurno encontrado:")
	fmt.Printf("Cliente: %s | %s %s | %s | %s\n",
		turno.ClienteNombre, turno.Fecha, turno.Hora, turno.ProfesionalNombre, turno.Servicio)

	fmt.Println("\n1. Cancelar turno")
	fmt.Println("2. Cambiar servicio")

	switch m.prompt("Opción: ") {
	case "1":
		if err := m.salon.CancelTurno(id); err != nil {
			m.printError(err)
			return
		}
		fmt.Println("Turno cancelado")
	case "2":
		nuevo := m.prompt("Nuevo servicio: ")
		if _, err := m.salon.UpdateTurnoServicio(id, nuevo); err != nil {
			m.printError(err)
			return
		}
		fmt.Println("Servicio actualizado")
	}
}

func (m *Menu) gestionarProfesionales() {
	for {
		fmt.Println("\n--- PROFESIONALES ---")
		for _, p := range m.salon.ListProfesionales() {
			estado := "INACTIVO"
			if p.Activo() {
				estado = "ACTIVO"
			}
			fmt.Printf("  %s. %s → %s\n", p.ID, p.Nombre, estado)
		}

		fmt.Println("\n1. Agregar profesional")
		fmt.Println("2. Cambiar estado")
		fmt.Println("3. Volver")

		switch m.prompt("Opción: ") {
		case "1":
			nombre := m.prompt("Nombre: ")
			prof, err := m.salon.AddProfesional(nombre)
			if err != nil {
				continue
			}
			fmt.Printf("¡%s agregado!\n", prof.Nombre)
		case "2":
			id := m.prompt("ID a cambiar: ")
			prof, err := m.salon.ToggleProfesional(id)
			if err != nil {
				fmt.Println("ID no encontrado")
				continue
			}
			fmt.Printf("%s ahora está %s\n", prof.Nombre, strings.ToUpper(prof.Estado))
		case "3":
			if err := m.salon.Flush(); err != nil {
				m.printError(err)
			}
			return
		}
	}
}

// prompt reads one trimmed line from the console
func (m *Menu) prompt(label string) string {
	fmt.Print(label)
	if !m.reader.Scan() {
		return ""
	}
	return strings.TrimSpace(m.reader.Text())
}

// printError renders a business error with its message
func (m *Menu) printError(err error) {
	if salonErr, ok := errors.GetSalonError(err); ok {
		fmt.Println("Error:", salonErr.Message)
		return
	}
	fmt.Println("Error:", err)
}
