package main

import (
	"github.com/andreclerigo/payload-api/internal/pkg/application"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/config"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/logging"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/messaging"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/repositories/database"
)

// @title Payload API
// @version 1.0.0
// @description REST ingestion API for environmental and positioning sensor readings
// @BasePath /api/v1
func main() {

	serviceName := "payload-api"

	log := logging.NewLogger()
	log.Infof("Starting up %s ...", serviceName)

	cfg := config.FromEnvironment()

	publisher := messaging.Initialize(cfg, log)

	db := database.NewDatastore(database.NewMongoDBConnector(cfg, log), cfg.DatabaseName, publisher, log)

	application.CreateRouterAndStartServing(log, cfg, db)
}
