package postgres

//nolint:revive
import (
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"tzform/config"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10

	driverName = "postgres"
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the read and write pools. It returns nil when the service runs on
// the in-memory store.
func New(cfg *config.Config) (*Connection, func(), error) {
	if cfg.DB.Driver != driverName {
		log.Info().Str("driver", cfg.DB.Driver).Msg("Postgres disabled")

		return nil, func() {}, nil
	}

	pg := cfg.DB.Postgres
	wait := time.Duration(pg.RetryWaitTime) * time.Second

	write, err := connect("write", DSN(pg.Write, pg.Prefix), pg.MaxRetry, wait)
	if err != nil {
		return nil, nil, err
	}

	read, err := connect("read", DSN(pg.Read, pg.Prefix), pg.MaxRetry, wait)
	if err != nil {
		closeDB("write", write)

		return nil, nil, err
	}

	conn := &Connection{Read: read, Write: write}

	return conn, conn.Close, nil
}

func (c *Connection) Close() {
	closeDB("read", c.Read)
	closeDB("write", c.Write)
}

// DSN builds a lib/pq connection URL. Sessions run in UTC so TIMESTAMPTZ
// values scan as UTC instants.
func DSN(endpoint config.PostgresEndpoint, prefix string) string {
	return endpoint.URL(prefix, url.Values{"timezone": {"UTC"}})
}

// connect dials dsn up to attempts times and returns the last error when every
// attempt fails.
func connect(name, dsn string, attempts int, wait time.Duration) (*sqlx.DB, error) {
	var err error

	for attempt := 1; attempt <= max(attempts, 1); attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			log.Info().Str("name", name).Int("attempt", attempt).Msg("Connected to database")

			return db, nil
		}

		log.Error().Err(err).Str("name", name).Int("attempt", attempt).Msg("Failed connecting to database")

		if attempt < attempts {
			time.Sleep(wait)
		}
	}

	return nil, fmt.Errorf("failed to connect to %s database after %d attempts: %w", name, max(attempts, 1), err)
}

func closeDB(name string, db *sqlx.DB) {
	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		log.Error().Err(err).Str("name", name).Msg("Failed closing database connection")
	}
}
