package db

import (
	"github.com/rs/zerolog/log"

	"github.com/sagarsuperuser/marketnav/server/settings"
	"github.com/sagarsuperuser/marketnav/store"
	"github.com/sagarsuperuser/marketnav/store/db/memory"
	"github.com/sagarsuperuser/marketnav/store/db/mysql"
)

// NewDBDriver creates new db driver based on settings.
func NewDBDriver(settings *settings.Settings) store.Driver {
	var driver store.Driver

	switch settings.Driver {
	case "memory":
		driver = memory.NewDB(settings.VisitRetention)

	case "mysql":
		driver = mysql.NewDB(settings)

	default:
		log.Fatal().Str("driver", settings.Driver).Msg("Unsupported DB driver")
	}
	return driver
}
