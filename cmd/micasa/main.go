package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jask/micasa/internal/config"
	"github.com/jask/micasa/internal/database"
	"github.com/jask/micasa/internal/database/repository"
	"github.com/jask/micasa/internal/service"
	"github.com/jask/micasa/internal/tui"
)

func main() {
	ctx := context.Background()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	svc := &service.ReservationService{}
	if cfg.Reservations.Store {
		if err := database.RunMigrations(cfg.Database.Path); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()
		svc.Reservations = repository.NewReservationRepo(db)
	}

	// Startup errors above go to stderr; from here on the alt screen owns
	// the terminal.
	closeLog, err := routeLog(cfg.Log.File)
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer closeLog()
	if svc.Reservations != nil {
		log.Printf("recording reservations in %s", cfg.Database.Path)
	}

	p := tea.NewProgram(tui.New(ctx, cfg, tui.Services{Submitter: svc}, loc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

// routeLog sends the standard logger to path, or discards it when path is
// empty.
func routeLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "micasa")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
