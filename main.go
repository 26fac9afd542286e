package main

import (
	"os"

	"github.com/abm-games/realestate-backend/app/controllers"
	"github.com/abm-games/realestate-backend/pkg/routes"
	"github.com/abm-games/realestate-backend/platform/logging"
	"github.com/abm-games/realestate-backend/platform/registry"
	socket "github.com/abm-games/realestate-backend/platform/sockets"
	"github.com/abm-games/realestate-backend/platform/users"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

func main() {
	logging.Init()

	games := registry.New()
	controllers.Init(games, users.NewStore())

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.GameRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: controllers.JWTSecret(),
	}))

	app.Get("/user/cur", controllers.Cur)

	go socket.CreateSocketIOServer(games)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":4101"
	}
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("http server stopped")
	}
}
