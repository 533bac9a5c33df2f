package db

import (
	"strings"
	"time"

	"github.com/hireloop-ai/hireloop/internal/config"
	"github.com/hireloop-ai/hireloop/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSQLitePath = "database.db"

// Connect opens the database described by cfg.DBURL. A postgres URL selects
// the postgres driver; anything else is treated as a path to an embedded
// sqlite file, defaulting to database.db in the working directory.
func Connect(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(cfg.DBURL, "postgres://") || strings.HasPrefix(cfg.DBURL, "postgresql://") {
		dial = postgres.Open(cfg.DBURL)
	} else {
		path := cfg.DBURL
		if path == "" {
			path = defaultSQLitePath
		}
		dial = sqlite.Open(path)
	}

	return gorm.Open(dial, &gorm.Config{
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      gormlogger.Warn,
		}),
	})
}

// Migrate creates the roles and candidates tables if absent. Safe to invoke
// repeatedly; called once at startup before any request is served.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Role{},
		&models.Candidate{},
	)
}
