package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/unspoken/internal/buildinfo"
	"github.com/dmitrijs2005/unspoken/internal/config"
	"github.com/dmitrijs2005/unspoken/internal/server"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
