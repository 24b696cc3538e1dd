package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"quote-server/src/coinbase"
	"quote-server/src/config"
	"quote-server/src/logger"
	"quote-server/src/publishers"
	"quote-server/src/quote"
	"quote-server/src/serializers"
	"quote-server/src/source"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	config, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(config, config.Name)

	// Create the feed source
	feedClient := coinbase.NewClient(&config.Coinbase, appLogger)
	feedSource := source.NewCoinbaseSource(config.MConfig, appLogger, feedClient)

	// Create quote service
	quoteService, err := quote.NewGRPCService(config, appLogger, feedSource)
	if err != nil {
		appLogger.Critical("failed to create quote service: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return feedSource.Run(ctx)
	})

	// Optional NATS bridge
	if config.NATS.Enabled {
		serializer, err := serializers.ForFormat(config.NATS.Format)
		if err != nil {
			appLogger.Critical("failed to create NATS serializer: %v", err)
			os.Exit(1)
		}
		publisher := publishers.NewNATSPublisher(&config.NATS, appLogger, serializer)
		group.Go(func() error {
			return publisher.Run(ctx, feedSource, config.Coinbase.Products)
		})
	}

	quoteService.Start()

	appLogger.Info("quote server running, gRPC: %s", config.Listen)
	appLogger.Info("Press Ctrl+C to stop.")

	// Cancel on shutdown signal
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		appLogger.Info("shutting down...")
		cancel()
	}()

	err = group.Wait()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	quoteService.Stop(stopCtx)

	if err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Critical("quote server failed: %v", err)
		os.Exit(1)
	}
}
