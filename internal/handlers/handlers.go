package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/hireloop-ai/hireloop/internal/config"
	"github.com/hireloop-ai/hireloop/internal/generator"
	"github.com/hireloop-ai/hireloop/internal/store"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

const sessionName = "hireloop"

func SetupRoutes(r *gin.Engine, cfg *config.Config, s *store.Store, gen *generator.Generator) {
	r.Use(RequestID())
	r.Use(sessions.Sessions(sessionName, cookie.NewStore([]byte(cfg.SecretKey))))

	r.GET("/health", HealthCheck)
	r.GET("/", func(c *gin.Context) { Index(c, s) })
	r.GET("/role/new", NewRoleForm)
	r.POST("/role/new", func(c *gin.Context) { CreateRole(c, s, gen) })
	r.GET("/role/:id", func(c *gin.Context) { ViewRole(c, s) })
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
