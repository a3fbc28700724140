package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/controller"
	"portfolio-backend/model"
	"portfolio-backend/util"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := util.SetupLogger(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logger")
	}

	client := connect(cfg)
	database := util.DatabaseName(cfg.MongoDB.URI, cfg.MongoDB.Database)

	var controllers []*controller.ResourceController
	for _, kind := range model.Kinds() {
		store := util.NewCollection(client, database, kind.Collection())
		controllers = append(controllers, controller.NewResourceController(kind, store))
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           controller.NewRouter(controllers...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server run on PORT: " + cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down server")
	}
	if err := util.Disconnect(ctx, client); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}

// connect creates the client and checks it in the background. Neither a bad
// URI nor an unreachable server stops the process; requests fail instead.
func connect(cfg *config.Config) *mongo.Client {
	client, err := util.Connect(cfg.MongoDB.URI)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil
	}

	go func() {
		if err := util.Ping(context.Background(), client); err != nil {
			log.Error().Err(err).Msg("Failed to connect to MongoDB")
			return
		}
		log.Info().Str("database", util.DatabaseName(cfg.MongoDB.URI, cfg.MongoDB.Database)).Msg("Connected to MongoDB")
	}()
	return client
}
