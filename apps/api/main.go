package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trezcool/talanta/apps/api/echo"
	"github.com/trezcool/talanta/core"
	"github.com/trezcool/talanta/core/dashboard"
	"github.com/trezcool/talanta/services/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatal(err)
	}
	logger := logsvc.NewRollbarLogger(std, conf)

	// set up services
	dashSvc := dashboard.NewServiceFromConfig(logger, conf)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:      conf.Server.Address,
			Debug:        conf.Debug,
			TestMode:     conf.TestMode,
			Logger:       logger,
			DashboardSvc: dashSvc,
		},
	)
	go app.Start()
	logger.Info("server started", map[string]interface{}{"address": conf.Server.Address, "env": conf.Env})

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	sig := <-shutdown

	logger.Info("shutting down", map[string]interface{}{"signal": sig.String()})
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error("graceful shutdown failed", err)
	}
}
