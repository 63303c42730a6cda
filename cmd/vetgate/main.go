package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetgate/internal/appointments"
	"vetgate/internal/auth"
	"vetgate/internal/clients"
	"vetgate/internal/config"
	"vetgate/internal/db"
	"vetgate/internal/diagnoses"
	"vetgate/internal/httpserver"
	"vetgate/internal/logging"
	"vetgate/internal/pets"
	"vetgate/internal/staff"
	"vetgate/internal/storage"
)

func main() {
	ctx := context.Background()
	logger := logging.New()

	cfg := config.Load()

	dbConn, err := db.Open(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer dbConn.Close()

	if err := db.ApplySchema(ctx, dbConn, cfg.SchemaPath); err != nil {
		log.Fatalf("apply schema: %v", err)
	}

	gw := storage.New(dbConn, cfg.StorageTimeout)

	clientStore := clients.NewStore(gw)
	staffStore := staff.NewStore(gw)
	petStore := pets.NewStore(gw)
	apptStore := appointments.NewStore(gw)
	diagStore := diagnoses.NewStore(gw)

	if cfg.StaffSeedPath != "" {
		if err := staffStore.SeedFromFile(ctx, cfg.StaffSeedPath); err != nil {
			log.Fatalf("seed staff: %v", err)
		}
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := auth.NewService(clientStore, staffStore, tokens)

	handler := httpserver.NewRouter(logger, authSvc, clientStore, staffStore, petStore, apptStore, diagStore, gw)
	server := httpserver.New(cfg.HTTPAddr, handler, logger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
