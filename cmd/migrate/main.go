package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pageza/devconnector/backend/config"
	"github.com/pageza/devconnector/backend/internal/database"
)

func main() {
	drop := flag.Bool("drop", false, "Drop every application table before migrating")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if *drop {
		// children first so foreign keys never block the drop
		for i := len(database.Models) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(database.Models[i]); err != nil {
				log.Error("failed to drop table", "model", fmt.Sprintf("%T", database.Models[i]), "error", err)
				os.Exit(1)
			}
		}
		log.Info("dropped application tables")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("schema is up to date")
}
