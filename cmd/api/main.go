package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"devimantras/internal/config"
	"devimantras/internal/database"
	"devimantras/internal/domain/auth"
	"devimantras/internal/domain/contact"
	"devimantras/internal/domain/event"
	"devimantras/internal/domain/feedback"
	"devimantras/internal/domain/mantra"
	"devimantras/internal/domain/system"
	"devimantras/internal/middleware"
)

const version = "1.3.1"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}

	gate := auth.NewGate(cfg.AdminUsername, cfg.AdminPassword)

	mantraRepo := mantra.NewRepository(db)
	eventRepo := event.NewRepository(db)
	contactRepo := contact.NewRepository(db)
	feedbackRepo := feedback.NewRepository(db)

	if err := feedbackRepo.EnsureTTLIndex(context.Background()); err != nil {
		log.Fatal(err)
	}

	authHandler := auth.NewHandler(gate)
	mantraHandler := mantra.NewHandler(mantra.NewService(mantraRepo))
	eventHandler := event.NewHandler(event.NewService(eventRepo))
	contactHandler := contact.NewHandler(contact.NewService(contactRepo), gate)
	feedbackHandler := feedback.NewHandler(feedback.NewService(feedbackRepo), gate)
	systemHandler := system.NewHandler(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}, version)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	system.RegisterRoutes(r, systemHandler)

	root := r.Group("")
	{
		auth.RegisterRoutes(root, authHandler)
		mantra.RegisterRoutes(root, mantraHandler)
		event.RegisterRoutes(root, eventHandler)
		contact.RegisterRoutes(root, contactHandler)
		feedback.RegisterRoutes(root, feedbackHandler)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
