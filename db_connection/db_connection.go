package dbconnection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"AmHughesAbsalom/halftime-analytics/config"
	"AmHughesAbsalom/halftime-analytics/queries"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

type DBConnection struct {
	*queries.GamesDBConnection
}

func NewDBConnection(cfg config.DatabaseConfig, log zerolog.Logger) (*DBConnection, *sqlx.DB, error) {
	db, connErr := sqlx.Open("postgres", cfg.DSN())
	if connErr != nil {
		return nil, nil, fmt.Errorf("failed to connect the database!...: %w", connErr)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("database connection failed!: %w", err)
	}

	return &DBConnection{
		GamesDBConnection: &queries.GamesDBConnection{DB: db, Log: log.With().Str("component", "queries").Logger()},
	}, db, nil
}

// RunMigrations applies every pending migration found under path.
func RunMigrations(db *sqlx.DB, path string, log zerolog.Logger) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL(path), "postgres", driver)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", err)
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("schema up to date")
	return nil
}

func sourceURL(path string) string {
	return "file://" + path
}
