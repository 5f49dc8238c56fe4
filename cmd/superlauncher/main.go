package main

import (
	"log"

	"superlauncher/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	application.Run()
}
