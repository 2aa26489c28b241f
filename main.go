package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/tablero/cmd"
	"github.com/thenoetrevino/tablero/internal/cli"
)

func main() {
	// A .env next to the binary may set TABLERO_* overrides
	_ = godotenv.Load()

	os.Exit(cli.ExitCode(cmd.Execute()))
}
