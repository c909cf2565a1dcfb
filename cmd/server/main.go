package main

import (
	"fmt"
	"log"

	"eprocure-backend/internal/config"
	"eprocure-backend/internal/database"
	"eprocure-backend/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}

	r := server.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
