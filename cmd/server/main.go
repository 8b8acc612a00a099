package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"bakehouse-api/internal/configs"
	httpdelivery "bakehouse-api/internal/delivery/http"
	"bakehouse-api/internal/notify"
	"bakehouse-api/internal/repository/sanity"
	"bakehouse-api/internal/service"
)

// @title bakehouse order api
// @version 1.0
// @description Order intake and query API for the bakehouse website. Persists orders into the headless content store and sends the customer confirmation plus internal alert emails.

// @host localhost:8080
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	if cfg.SanityProjectID == "" {
		logrus.Fatal("SANITY_PROJECT_ID is required")
	}
	if cfg.ResendAPIKey == "" {
		logrus.Warn("RESEND_API_KEY not set, order emails will be skipped")
	}

	store := sanity.NewClient(sanity.Config{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		Token:      cfg.SanityToken,
	})

	sender := notify.NewResendClient(cfg.ResendAPIKey, "")
	dispatcher := notify.NewDispatcher(sender, store, cfg.OrderFromEmail, cfg.OrderAdminEmail)

	svc := service.NewService(store, dispatcher)

	h := httpdelivery.NewHandler(svc, cfg.CORSOriginsSlice())
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit
	logrus.Print("shutdown signal received")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	logrus.Print("service stopped")
}
