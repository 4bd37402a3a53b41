package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"parcellocker/internal/adapters/out/memory"
	redisadapter "parcellocker/internal/adapters/out/redis"
	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/jobs"

	"github.com/redis/go-redis/v9"
)

// MemoryStoreAddr selects the in-memory store instead of Redis. State lives
// in the process and is lost on restart; meant for local development only.
const MemoryStoreAddr = "memory"

// CompositionRoot wires the store adapters into the application's command
// and query handlers. Construction opens the store; the caller owns the
// root's lifecycle and must Close it on shutdown.
type CompositionRoot struct {
	redisClient *redis.Client // nil in memory mode
	memoryStore *memory.Store // nil in redis mode

	registry  ports.LockerRegistry
	cellStore ports.CellStateStore
	uow       ports.LockerUnitOfWork
}

// NewCompositionRoot builds the dependency graph from the configuration.
// With a real Redis address it verifies connectivity with a ping; with
// MemoryStoreAddr it runs on the in-memory adapter.
func NewCompositionRoot(ctx context.Context, config Config) (*CompositionRoot, error) {
	if config.RedisURL == "" && config.RedisAddr == MemoryStoreAddr {
		store := memory.NewStore()
		return &CompositionRoot{
			memoryStore: store,
			registry:    store,
			cellStore:   store,
			uow:         store,
		}, nil
	}

	opts, err := redisOptions(config)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := redisadapter.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &CompositionRoot{
		redisClient: client,
		registry:    redisadapter.NewLockerRegistry(client),
		cellStore:   redisadapter.NewCellStore(client),
		uow:         redisadapter.NewUnitOfWork(client),
	}, nil
}

func redisOptions(config Config) (*redis.Options, error) {
	if config.RedisURL != "" {
		opts, err := redis.ParseURL(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	}, nil
}

// Close releases the store client, if any.
func (c *CompositionRoot) Close() error {
	if c.redisClient == nil {
		return nil
	}
	return c.redisClient.Close()
}

// SeedLockers writes the configured locker definitions into the store.
// Seeding is idempotent: re-running it overwrites each locker record with
// the same definition.
func (c *CompositionRoot) SeedLockers(ctx context.Context, seeds []LockerSeed, logger *slog.Logger) error {
	for _, seed := range seeds {
		lkr, err := locker.NewLocker(seed.LockerID, seed.Cells)
		if err != nil {
			return fmt.Errorf("seed locker %d: %w", seed.LockerID, err)
		}

		if c.memoryStore != nil {
			err = c.memoryStore.AddLocker(lkr)
		} else {
			err = redisadapter.SeedLocker(ctx, c.redisClient, lkr)
		}
		if err != nil {
			return fmt.Errorf("seed locker %d: %w", seed.LockerID, err)
		}

		logger.InfoContext(ctx, "Seeded locker",
			"lockerId", seed.LockerID, "cells", len(seed.Cells))
	}
	return nil
}

func (c *CompositionRoot) CreateEnterPinCommandHandler() commands.EnterPinCommandHandler {
	return commands.NewEnterPinCommandHandler(c.registry, c.uow)
}

func (c *CompositionRoot) CreateSetCellStatusCommandHandler() commands.SetCellStatusCommandHandler {
	return commands.NewSetCellStatusCommandHandler(c.registry, c.uow)
}

func (c *CompositionRoot) CreateSetCellPinCommandHandler() commands.SetCellPinCommandHandler {
	return commands.NewSetCellPinCommandHandler(c.registry, c.uow)
}

func (c *CompositionRoot) CreateGetLockerQueryHandler() queries.GetLockerQueryHandler {
	return queries.NewGetLockerQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetCellQueryHandler() queries.GetCellQueryHandler {
	return queries.NewGetCellQueryHandler(c.registry, c.cellStore)
}

// CreateJobManager builds the background job manager over the configured
// locker fleet.
func (c *CompositionRoot) CreateJobManager(lockerIDs []int64, auditSchedule string, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLockerQueryHandler(),
		c.CreateGetCellQueryHandler(),
		lockerIDs,
		auditSchedule,
		logger,
	)
}
