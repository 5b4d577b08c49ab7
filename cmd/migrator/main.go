package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/database"
)

var log = logrus.New()

func main() {
	if config.Development() {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	url, err := config.DbURL()
	if err != nil {
		log.WithError(err).Error("failed to read database config")
		os.Exit(1)
	}

	version, err := database.Migrate(url)
	if err != nil {
		log.WithError(err).Error("failed to migrate saved_game schema")
		os.Exit(1)
	}
	log.WithField("version", version).Info("migration successful")
}
