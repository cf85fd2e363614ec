package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/sagarsuperuser/marketnav/server/settings"
	"github.com/sagarsuperuser/marketnav/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id         CHAR(36)     NOT NULL PRIMARY KEY,
	route_name VARCHAR(128) NOT NULL,
	path       VARCHAR(512) NOT NULL,
	view       VARCHAR(128) NOT NULL,
	role       VARCHAR(16)  NOT NULL,
	created_at DATETIME(6)  NOT NULL,
	INDEX idx_visits_route_created (route_name, created_at),
	INDEX idx_visits_created (created_at)
)`

type DB struct {
	db       *sql.DB
	settings *settings.Settings
	config   *mysql.Config
}

func NewDB(settings *settings.Settings) store.Driver {
	driver := DB{settings: settings}
	driver.config = createConfig(settings)
	dsn := driver.config.FormatDSN()

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open MySQL connection")
	}
	driver.db = db

	// set pool options
	driver.db.SetMaxOpenConns(settings.MySQLMaxOpenConns)
	driver.db.SetMaxIdleConns(settings.MySQLMaxIdleConns)
	driver.db.SetConnMaxLifetime(settings.MySQLConnMaxLifetime)
	driver.db.SetConnMaxIdleTime(settings.MySQLConnMaxIdleTime)

	// Test the connection
	if err := driver.db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping MySQL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.MySQLQueryTimeout)
	defer cancel()
	if _, err := driver.db.ExecContext(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("Failed to create visits table")
	}

	log.Info().
		Str("host", settings.MySQLHost).
		Int("port", settings.MySQLPort).
		Str("database", settings.MySQLDatabase).
		Msg("Connected to MySQL")

	return &driver
}

func (d *DB) Close() error {
	return d.db.Close()
}

func createConfig(settings *settings.Settings) *mysql.Config {
	config := mysql.NewConfig()
	config.User = settings.MySQLUser
	config.Passwd = settings.MySQLPassword
	config.Net = "tcp"
	config.Addr = fmt.Sprintf("%s:%d", settings.MySQLHost, settings.MySQLPort)
	config.DBName = settings.MySQLDatabase
	config.ParseTime = true
	config.Loc = time.UTC
	// Timeouts
	config.Timeout = settings.MySQLConnectTimeout
	config.ReadTimeout = settings.MySQLQueryTimeout
	config.WriteTimeout = settings.MySQLQueryTimeout
	return config
}
