package main

import (
	"context"
	"log"
	"os"

	"github.com/buildora/buildora/internal/admin/app"
	"github.com/buildora/buildora/internal/admin/cli"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	root := cli.NewRootCmd(application)
	if err := root.ExecuteContext(context.Background()); err != nil {
		root.PrintErrln("Error:", err.Error())
		os.Exit(1)
	}
}
