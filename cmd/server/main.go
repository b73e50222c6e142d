package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-rx-api/internal/config"
	handler "github.com/MKhiriev/go-rx-api/internal/handler/http"
	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/internal/server"
	"github.com/MKhiriev/go-rx-api/internal/store"
	"github.com/MKhiriev/go-rx-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info)

	log := logger.NewLogger("go-rx-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Str("address", cfg.HTTPAddress).Str("fixtures", cfg.FixturesPath).Msg("received configs")

	users, err := store.NewUserRepository(cfg.FixturesPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading fixtures")
	}

	h := handler.NewHandler(users, info, cfg.Token, log)

	srv, err := server.NewServer(h.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
