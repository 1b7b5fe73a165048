package main

import (
	"context"
	"log"

	"github.com/avdoshkin/helpnet/internal/app"
	"github.com/avdoshkin/helpnet/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	a.Run(ctx)
}
