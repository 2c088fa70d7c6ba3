package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rustyeddy/swing/cmd/swing/cmd"
)

func main() {
	// Optional .env for SWING_* overrides; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
