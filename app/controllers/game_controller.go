package controllers

import (
	"github.com/abm-games/realestate-backend/app/models"
	"github.com/abm-games/realestate-backend/pkg"
	"github.com/abm-games/realestate-backend/platform/board"
	"github.com/abm-games/realestate-backend/platform/registry"
	"github.com/abm-games/realestate-backend/platform/users"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

var (
	games     *registry.Registry
	userStore *users.Store
)

// Init wires the controllers to their backing stores. Called once from main.
func Init(reg *registry.Registry, store *users.Store) {
	games = reg
	userStore = store
}

const defaultStartingBalance = 1500

func CreateGame(c *fiber.Ctx) error {
	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	goPayout := gameCreateDto.GoPayout
	if goPayout == 0 {
		goPayout = 200
	}
	rents := gameCreateDto.Rents
	if len(rents) == 0 {
		rents = board.DefaultRents()
	}
	startBal := gameCreateDto.StartingBalance
	if startBal == 0 {
		startBal = defaultStartingBalance
	}

	id := pkg.RandString(8)
	if _, err := games.Create(id, gameCreateDto.Name, goPayout, rents, startBal); err != nil {
		log.WithError(err).Warn("rejected game config")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"id": id})
}

func GetAllAvailGames(c *fiber.Ctx) error {
	return c.JSON(games.ListOpen())
}

func FindAvailGame(c *fiber.Ctx) error {
	info, ok := games.Find()
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(info)
}

func VerifyGame(c *fiber.Ctx) error {
	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return c.JSON(fiber.Map{"status": games.Verify(verifyGameDto.Code)})
}
