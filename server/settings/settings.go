package settings

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Settings is the configuration to start main server.
type Settings struct {
	// Mode can be "prod" or "dev"
	Mode string `envconfig:"MODE" default:"dev"`

	// Server listen address config
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8080"`

	// RoutesFile is an optional TOML route manifest. The embedded
	// marketplace manifest is used when empty.
	RoutesFile string `envconfig:"ROUTES_FILE" default:""`

	// Driver is the visit log driver: "memory" or "mysql"
	Driver string `envconfig:"DRIVER" default:"memory"`

	// VisitRetention caps how many visits the memory driver keeps.
	VisitRetention int `envconfig:"VISIT_RETENTION" default:"1000"`

	// MySQL settings
	MySQLHost     string `envconfig:"MYSQL_HOST" default:"127.0.0.1"`
	MySQLPort     int    `envconfig:"MYSQL_PORT" default:"3306"`
	MySQLDatabase string `envconfig:"MYSQL_DB" default:"marketnav"`
	MySQLUser     string `envconfig:"MYSQL_USER" default:"appuser"`
	MySQLPassword string `envconfig:"MYSQL_PASSWORD" default:"password"`
	// Timeouts
	MySQLConnectTimeout time.Duration `envconfig:"MYSQL_CONNECT_TIMEOUT" default:"5s"`
	MySQLQueryTimeout   time.Duration `envconfig:"MYSQL_QUERY_TIMEOUT" default:"5s"`
	// Pool
	MySQLMaxOpenConns    int           `envconfig:"MYSQL_MAX_OPEN_CONNS" default:"25"`
	MySQLMaxIdleConns    int           `envconfig:"MYSQL_MAX_IDLE_CONNS" default:"10"`
	MySQLConnMaxLifetime time.Duration `envconfig:"MYSQL_CONN_MAX_LIFETIME" default:"30m"`
	MySQLConnMaxIdleTime time.Duration `envconfig:"MYSQL_CONN_MAX_IDLE_TIME" default:"5m"`

	// Logging settings
	LogLevel  string `envconfig:"LOG_LEVEL" default:"debug"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`

	// Origins is the list of allowed origins
	Origins []string `envconfig:"ORIGINS" default:""`
}

// Load reads settings from environment variables.
func Load() (*Settings, error) {
	s := new(Settings)
	if err := envconfig.Process("", s); err != nil {
		return nil, err
	}
	return s, nil
}
