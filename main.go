package main

import (
	"flag"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"employee-management-backend/config"
	"employee-management-backend/repository"
	"employee-management-backend/router"
	"employee-management-backend/seeder"

	_ "time/tzdata"
)

func main() {
	seed := flag.Bool("seed", false, "seed demo accounts and punch history, then exit")
	flag.Parse()

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()

	defer config.DisconnectDB()

	if *seed {
		seeder.SeedEmployees(repository.NewEmployeeRepository(), repository.NewPunchRepository())
		return
	}

	app := fiber.New()

	config.SetupCORS(app)

	app.Use(logger.New())

	router.SetupRoutes(app)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
