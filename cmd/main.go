package main

import (
	"WebFood-API/cmd/config"
	migration "WebFood-API/cmd/database/migrate"
	"WebFood-API/internal/utils"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	utils.LoadConfig("config.yaml")

	db, err := config.ConnectDB()
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	app, cleanup, err := config.NewApp(db)
	if err != nil {
		logrus.Fatalf("failed to initialize app: %v", err)
	}
	defer cleanup()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-done
		logrus.Info("shutting down...")
		if err := app.Shutdown(); err != nil {
			logrus.WithError(err).Error("failed to shut down server")
		}
	}()

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		logrus.WithError(err).Error("server stopped")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
