package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/empuertos/movielist/config"
	"github.com/empuertos/movielist/handlers"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if cfg.TMDBAPIKey == "" {
		log.Println("WARNING: TMDB_API_KEY not set, API requests will be rejected")
	}

	app := fiber.New()

	app.Use(recover.New())
	app.Use(helmet.New(helmet.Config{
		// The whole point of this proxy is serving cross-origin callers.
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(handlers.CORS())

	router := handlers.NewRouter(cfg)

	// Fiber registers HEAD alongside GET automatically.
	app.Get("/healthz", handlers.Health)
	app.Get("/", router.Handle)

	log.Println("Starting server on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
