package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mizutani/kotoba/cmd"
)

func main() {
	// API keys for mnemonic generation can live in a local .env file.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
