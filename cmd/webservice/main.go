package main

import (
	"github.com/rioharsa/storefront-gateway/config"
	"github.com/rioharsa/storefront-gateway/internal/app"
)

func main() {
	config := config.CreateNewConfig()

	server := app.App{
		Config: config,
	}

	server.Start()
}
