package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hireloop-ai/hireloop/internal/config"
	"github.com/hireloop-ai/hireloop/internal/db"
	"github.com/hireloop-ai/hireloop/internal/generator"
	"github.com/hireloop-ai/hireloop/internal/handlers"
	"github.com/hireloop-ai/hireloop/internal/store"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logrus.New()

	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(dbConn); err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplateGlob)
	handlers.SetupRoutes(r, cfg, store.New(dbConn), generator.New(nil))

	log.Printf("HireLoop listening on %s", cfg.HTTPPort)
	if err := r.Run(cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
