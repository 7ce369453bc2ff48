package main

import (
	"errors"
	"flag"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmcallejas/pasanaku/internal/config"
)

// Applies the SQL migrations against a Postgres database. The sqlite
// driver applies them itself at startup, so this command is only
// needed for Postgres deployments.
func main() {
	down := flag.Bool("down", false, "roll back the most recent migration instead of migrating up")
	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	m, err := migrate.New(*source, cfg.Database.URL())
	if err != nil {
		log.Fatalf("migration setup failed: %v", err)
	}

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("database migration failed: %v", err)
	}
	log.Println("database migrations applied")
}
