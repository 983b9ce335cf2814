package main

import (
	_ "service_engine_x/docs"
	"service_engine_x/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Service Engine API
// @version         1.0
// @description     Multi-tenant service business platform: proposals, orders, invoices, engagements.

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a session JWT or API token.

func main() {
	routes.Run()
}
