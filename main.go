package main

import (
	"fmt"
	"log"
	"os"

	"coalert/app/cli"
	"coalert/app/session"
	"coalert/config"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "version" {
		fmt.Printf("coalert version %s\n", cliVersion)
		return
	}

	cfg := config.Load()
	store, err := session.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open credential store: %v", err)
	}

	app := cli.NewApp(cfg, store, os.Stdout)
	code := app.HandleCommand(os.Args[1:])
	if err := store.Close(); err != nil {
		log.Printf("Failed to close credential store: %v", err)
	}
	if code != 0 {
		os.Exit(code)
	}
}
