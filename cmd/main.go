package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/luscis/dhcpctl/cmd/api"
	"github.com/luscis/dhcpctl/cmd/api/v1"
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()
	api.Url = api.GetEnv("URL", api.Url)
	api.Token = api.GetEnv("TOKEN", api.Token)
	api.Conf = api.GetEnv("CONF", api.Conf)
	app := &api.App{}
	app.New()

	v1.Commands(app)
	if err := app.Run(os.Args); err != nil {
		log.SetFlags(0)
		log.Fatal(err)
	}
}
