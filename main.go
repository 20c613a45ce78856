package main

import (
	"log"
	"net/http"
	"time"

	"finledger/api"
	"finledger/config"
	"finledger/database"
	"finledger/security"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.CreateSchema(db); err != nil {
		log.Fatal(err)
	}

	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	server := api.NewServer(db, tokens, api.Options{
		AllowedOrigins:    cfg.AllowedOrigins,
		MinPasswordLength: cfg.MinPasswordLength,
	})

	srv := &http.Server{
		Handler:      server.Handler(),
		Addr:         ":" + cfg.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Starting server on port %s...", cfg.Port)
	log.Fatal(srv.ListenAndServe())
}
