package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

// Connect opens Postgres for postgres:// DSNs and falls back to the
// cgo-free sqlite driver for anything else (local dev, tests).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("database: connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("database: using SQLite at", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
