package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/aalrahma/salat-compass/internal/cli"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

func main() {
	// Load a .env file into the environment if one exists, so SALAT_*
	// overrides can live next to the shell that runs the command.
	_ = godotenv.Load()

	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
