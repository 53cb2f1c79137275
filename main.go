package main

import (
	"log"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/startup"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found -- config defaults will be used")
	}

	if err := startup.Initialize(); err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
}
