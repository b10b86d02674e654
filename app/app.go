package app

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/vastra-crm/config"
	"github.com/yeremiapane/vastra-crm/models"
	"github.com/yeremiapane/vastra-crm/utils"
	"gorm.io/gorm"
)

// Env is the explicit application context handed to the router and services.
type Env struct {
	Config *config.Config
	DB     *gorm.DB
	Log    *logrus.Logger
	Now    func() time.Time
}

// New opens the store, migrates it and wires the logger.
func New(cfg *config.Config) (*Env, error) {
	log := utils.NewLogger(cfg.LogLevel, os.Stdout)
	for _, w := range cfg.Warnings {
		log.Warn(w)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.WithField("driver", cfg.DBDriver).Info("AutoMigrate completed.")

	return &Env{Config: cfg, DB: db, Log: log, Now: time.Now}, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (e *Env) Close() error {
	sqlDB, err := e.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
