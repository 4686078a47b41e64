package main

import (
	"log"
	"os"

	"github.com/diegoclair/chore-board/internal/cli"
	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
