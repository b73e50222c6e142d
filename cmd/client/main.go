package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-rx-api/internal/adapter"
	"github.com/MKhiriev/go-rx-api/internal/client"
	"github.com/MKhiriev/go-rx-api/internal/config"
	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/internal/service"
	"github.com/MKhiriev/go-rx-api/internal/tui"
	"github.com/MKhiriev/go-rx-api/models"
	"github.com/MKhiriev/go-rx-api/rxapi"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-rx-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-rx-client")
	if cfg.App.Interactive {
		log = logger.NewClientLogger("go-rx-client")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	userAdapter, err := adapter.NewHTTPUserAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create user adapter")
	}

	queue := rxapi.NewSerialQueue()
	services := service.NewServices(userAdapter, queue, log)

	var ui client.UI
	if cfg.App.Interactive {
		ui = tui.New(services, cfg.App.UserIDs, info, log)
	}

	app, err := client.NewApp(cfg, services, ui, queue, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
