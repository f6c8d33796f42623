package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/mkorsa/covidash/internal/api"
	"github.com/mkorsa/covidash/internal/pkg/constants"
	"github.com/mkorsa/covidash/internal/pkg/logger"
	"github.com/mkorsa/covidash/internal/service/dashboard"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperCORSOrigin, "http://localhost:3000")
	viper.SetDefault(constants.ViperWatchSources, true)

	if err := viper.ReadInConfig(); err != nil {
		logger.Fatal(ctx, fmt.Errorf("read config: %w", err))
	}

	logger.Init(viper.GetBool(constants.ViperDebug))
	defer logger.Sync()

	dashboardService := dashboard.NewService(dashboard.Config{
		CaseSource:        viper.GetString(constants.ViperCaseSource),
		VaccinationSource: viper.GetString(constants.ViperVaccinationSource),
	})

	// Fail fast: no partial dashboard if either source is unreadable.
	if _, err := dashboardService.Snapshot(ctx); err != nil {
		logger.Fatal(ctx, fmt.Errorf("initial load: %w", err))
	}

	if viper.GetBool(constants.ViperWatchSources) {
		if err := dashboardService.Watch(ctx); err != nil {
			logger.Fatal(ctx, fmt.Errorf("watch sources: %w", err))
		}
	}

	apiService, err := api.NewAPIService(dashboardService, viper.GetString(constants.ViperCORSOrigin))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go apiService.Serve(viper.GetString(constants.ViperListenAddr))

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := apiService.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}
