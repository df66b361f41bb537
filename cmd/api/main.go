package main

import (
	"context"
	"log"

	"user-directory-service/cmd/api/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(context.Background()); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}
