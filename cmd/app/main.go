package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"parcellocker/cmd"
	httpadapter "parcellocker/internal/adapters/in/http"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	root, err := cmd.NewCompositionRoot(ctx, configs)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer root.Close()

	seeds, err := configs.LockerSeeds()
	if err != nil {
		log.Fatalf("Bad LOCKERS spec: %v", err)
	}
	if err := root.SeedLockers(ctx, seeds, logger); err != nil {
		log.Fatalf("Failed to seed lockers: %v", err)
	}

	lockerIDs := make([]int64, len(seeds))
	for i, seed := range seeds {
		lockerIDs[i] = seed.LockerID
	}
	jobManager := root.CreateJobManager(lockerIDs, configs.AuditSchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A .env file is optional; plain environment variables work too.
	_ = godotenv.Load(".env")

	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Bad REDIS_DB value %q", raw)
		}
		redisDB = parsed
	}

	return cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		Lockers:       envOrDefault("LOCKERS", "1234:C-001,C-002"),
		AuditSchedule: envOrDefault("AUDIT_SCHEDULE", "0 * * * * *"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	server := httpadapter.NewServer(
		root.CreateEnterPinCommandHandler(),
		root.CreateSetCellStatusCommandHandler(),
		root.CreateSetCellPinCommandHandler(),
		root.CreateGetLockerQueryHandler(),
		root.CreateGetCellQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
