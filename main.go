package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/seralk/lingua/cmd"
)

func main() {
	// Optional; a missing .env is not an error.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
