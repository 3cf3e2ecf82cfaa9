// Seeds the data files with fake clients for manual testing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"salon_turnos/internal/agenda"
	"salon_turnos/internal/config"
	"salon_turnos/internal/storage/flatfile"
	salonerrors "salon_turnos/pkg/errors"
	"salon_turnos/pkg/logger"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	clients := flag.Int("clients", 25, "number of fake clients to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store := flatfile.NewStore(
		cfg.ClientsPath(),
		cfg.ProfesionalesPath(),
		cfg.SlotsPath(),
		cfg.TurnosPath(),
	)

	appLogger := logger.New(logger.LevelWarn)
	salon, err := agenda.New(cfg, store, appLogger)
	if err != nil {
		log.Fatalf("init agenda: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	log.Printf("seeding %d clients", *clients)
	created := 0
	for i := 0; i < *clients; i++ {
		dni := fmt.Sprintf("%08d", gofakeit.Number(10000000, 99999999))
		_, err := salon.RegisterCliente(
			dni,
			gofakeit.FirstName(),
			gofakeit.LastName(),
			gofakeit.Email(),
			gofakeit.Phone(),
		)
		if err != nil {
			// Random DNIs can collide with existing clients, skip those
			if errors.Is(err, salonerrors.ErrDuplicateClient) {
				continue
			}
			log.Fatalf("register client: %v", err)
		}
		created++
	}

	if err := salon.Flush(); err != nil {
		log.Fatalf("flush: %v", err)
	}

	log.Printf("seed complete, %d clients created", created)
}
