package runner

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/sagarsuperuser/marketnav/internal/common"
	"github.com/sagarsuperuser/marketnav/navigation"
	"github.com/sagarsuperuser/marketnav/server"
	"github.com/sagarsuperuser/marketnav/server/settings"
	"github.com/sagarsuperuser/marketnav/store"
	"github.com/sagarsuperuser/marketnav/store/db"
)

type Runner struct {
	settings *settings.Settings
	srv      *server.Server
	mu       sync.Mutex
}

func NewRunner(s *settings.Settings) *Runner {
	return &Runner{
		settings: s,
	}
}

func (runner *Runner) Run() {
	// setup logger
	if err := setupLogger(runner.settings); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logger")
	}
	log.Info().Str("mode", runner.settings.Mode).
		Str("log_level", log.Logger.GetLevel().String()).
		Msg("Logger initialized")

	// load and validate the route table; a bad manifest stops startup
	table, err := LoadTable(runner.settings.RoutesFile)
	if err != nil {
		log.Fatal().Err(err).Str("routes_file", runner.settings.RoutesFile).Msg("invalid route table")
	}
	for _, w := range navigation.Lint(table) {
		log.Warn().Str("route", w.Route.Name).Str("path", w.Route.Path).Msg(w.Message)
	}
	log.Info().Int("routes", table.Len()).Msg("Route table loaded")

	// setup Database driver
	dbDriver := db.NewDBDriver(runner.settings)

	// set up store
	storeInstance := store.New(dbDriver, common.NowUTC)

	// metrics registry, process and runtime collectors included
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// setup server
	srv := server.NewServer(runner.settings, storeInstance, navigation.NewRouter(table), registry)

	runner.mu.Lock()
	runner.srv = srv
	runner.mu.Unlock()

	srv.Start()
}

func (runner *Runner) Stop() {
	runner.mu.Lock()
	srv := runner.srv
	runner.mu.Unlock()
	if srv != nil {
		srv.Stop()
	}
}

// LoadTable builds the route table from the manifest at path, or from the
// embedded marketplace manifest when path is empty.
func LoadTable(path string) (*navigation.Table, error) {
	if path == "" {
		return navigation.DefaultTable()
	}
	return navigation.LoadManifestFile(path)
}
