package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/unspoken/internal/buildinfo"
	"github.com/dmitrijs2005/unspoken/internal/cli"
	"github.com/dmitrijs2005/unspoken/internal/config"
	"github.com/dmitrijs2005/unspoken/internal/flagx"
)

func main() {
	os.Exit(run())
}

func run() int {
	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer app.Close()

	if err := app.Run(ctx, flagx.ExcludeArgs(os.Args[1:], config.GlobalFlags)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
