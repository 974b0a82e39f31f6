package main

import (
	"context"
	"log"
	"os"

	"github.com/okozlov/accountd/internal/buildinfo"
	"github.com/okozlov/accountd/internal/client/cli"
	"github.com/okozlov/accountd/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
