package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/vastra-crm/app"
	"github.com/yeremiapane/vastra-crm/config"
	"github.com/yeremiapane/vastra-crm/router"
	"github.com/yeremiapane/vastra-crm/utils"
)

func main() {
	cfg := config.Load()

	env, err := app.New(cfg)
	if err != nil {
		utils.NewLogger(cfg.LogLevel, os.Stderr).WithError(err).Fatal("Failed to connect to database")
	}
	defer env.Close()

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(env)
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		env.Log.WithError(err).Warn("Could not set trusted proxies")
	}

	env.Log.WithField("port", cfg.Port).Infof("%s listening", cfg.AppName)
	if err := r.Run(":" + cfg.Port); err != nil {
		env.Log.WithError(err).Fatal("Server stopped")
	}
}
