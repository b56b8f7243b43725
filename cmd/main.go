// Package main is the entry point for the catalog-service application.
//
// @title           Catalog Service API
// @version         1.0.0
// @description     Wholesale catalog storefront: browse products, build an order and export it as CSV or a WhatsApp message.
//
//	Quantities below the per-product minimum are stored as 0 and orders are checked against the minimum purchase value.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/catalog-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for the export log endpoint.
//
// @tag.name        Catalog
// @tag.description Catalog browsing and purchase conditions
//
// @tag.name        Orders
// @tag.description Order sessions and quantities
//
// @tag.name        Exports
// @tag.description CSV and WhatsApp exports and the export log
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/catalog-service/docs" // swagger docs

	"github.com/guttosm/catalog-service/config"
	"github.com/guttosm/catalog-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port)
	server.SetShutdownTimeout(cfg.Server.ShutdownTimeout)
	server.OnShutdown(application.Close)

	if err := server.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
