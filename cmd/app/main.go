package main

import (
	"breakfast4u-web/cmd/config"
	"breakfast4u-web/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	app, err := config.NewApp()
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(utils.GetConfig("LISTEN_ADDR")); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
