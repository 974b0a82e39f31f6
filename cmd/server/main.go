package main

import (
	"context"
	"log"
	"os"

	"github.com/okozlov/accountd/internal/buildinfo"
	"github.com/okozlov/accountd/internal/server"
	"github.com/okozlov/accountd/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
