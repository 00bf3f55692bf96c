package main

import (
	"log"

	"github.com/atelierhq/atelier/internal/server"

	// Register migrations and seeders so `atelier` subcommands and the
	// server binary share one view of the schema.
	_ "github.com/atelierhq/atelier/database/migrations"
	_ "github.com/atelierhq/atelier/database/seeders"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
