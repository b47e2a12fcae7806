package container

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/spotify-electron-api/config"
	app "github.com/oksasatya/spotify-electron-api/internal/application"
	"github.com/oksasatya/spotify-electron-api/internal/domain/repository"
	"github.com/oksasatya/spotify-electron-api/internal/infrastructure/memory"
	"github.com/oksasatya/spotify-electron-api/internal/infrastructure/mongodb"
	handlers "github.com/oksasatya/spotify-electron-api/internal/interface/http"
	"github.com/oksasatya/spotify-electron-api/pkg/helpers"
)

// Stores groups the repositories of one storage driver with its health probe.
type Stores struct {
	Users     repository.UserRepository
	Playlists repository.PlaylistRepository
	Songs     repository.SongRepository
	Health    handlers.Pinger
}

// MemoryStores backs every repository with one in-process store.
func MemoryStores(s *memory.Store) Stores {
	return Stores{Users: s.Users(), Playlists: s.Playlists(), Songs: s.Songs(), Health: s}
}

// MongoStores backs every repository with the gateway's database.
func MongoStores(g *mongodb.Gateway) Stores {
	return Stores{
		Users:     mongodb.NewUserRepository(g.DB),
		Playlists: mongodb.NewPlaylistRepository(g.DB),
		Songs:     mongodb.NewSongRepository(g.DB),
		Health:    g,
	}
}

// Container holds the components shared by the router modules.
// It is built once in main and passed down explicitly.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Redis  *redis.Client

	UserService     *app.UserService
	PlaylistService *app.PlaylistService

	UserHandler     *handlers.UserHandler
	PlaylistHandler *handlers.PlaylistHandler
	HealthHandler   *handlers.HealthHandler

	closers []func(ctx context.Context) error
}

// Assemble wires services and handlers on top of already opened infrastructure.
// photos and events may be nil.
func Assemble(cfg *config.Config, logger *logrus.Logger, stores Stores, rdb *redis.Client, photos app.PhotoStore, events app.EventPublisher) *Container {
	users := app.NewUserService(stores.Users, photos, events, logger)
	playlists := app.NewPlaylistService(stores.Playlists, app.NewSongCatalog(stores.Songs), events, logger)
	return &Container{
		Config:          cfg,
		Logger:          logger,
		Redis:           rdb,
		UserService:     users,
		PlaylistService: playlists,
		UserHandler:     handlers.NewUserHandler(users, logger, cfg.MaxPhotoBytes),
		PlaylistHandler: handlers.NewPlaylistHandler(playlists, logger),
		HealthHandler:   handlers.NewHealthHandler(stores.Health),
	}
}

// New opens storage, redis and the optional GCS and RabbitMQ clients.
// Clients opened before a failure are closed before returning.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	var closers []func(ctx context.Context) error
	fail := func(err error) (*Container, error) {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i](ctx)
		}
		return nil, err
	}

	var stores Stores
	switch cfg.StorageDriver {
	case "memory":
		logger.Warn("using in-memory storage; data is lost on restart")
		stores = MemoryStores(memory.NewStore())
	case "mongo", "":
		gw, err := mongodb.NewGateway(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoMaxPoolSize, cfg.MongoConnectTimeout)
		if err != nil {
			return fail(fmt.Errorf("connect mongo: %w", err))
		}
		closers = append(closers, gw.Close)
		if err := gw.EnsureIndexes(ctx); err != nil {
			return fail(fmt.Errorf("ensure indexes: %w", err))
		}
		stores = MongoStores(gw)
	default:
		return fail(fmt.Errorf("unknown storage driver %q", cfg.StorageDriver))
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	closers = append(closers, func(context.Context) error { return rdb.Close() })
	if !helpers.RedisReachable(ctx, rdb) {
		logger.WithField("addr", cfg.RedisAddr).Warn("redis unreachable; rate limiting fails open")
	}

	var photos app.PhotoStore
	if cfg.GCSBucket != "" {
		gcs, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			return fail(fmt.Errorf("init gcs: %w", err))
		}
		closers = append(closers, closeGCS(gcs))
		photos = helpers.NewGCSPhotoStore(gcs, cfg.GCSBucket)
	} else {
		logger.Info("GCS_BUCKET not set; photo uploads disabled")
	}

	var events app.EventPublisher
	if cfg.EventsEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
		if err != nil {
			return fail(fmt.Errorf("init rabbitmq: %w", err))
		}
		closers = append(closers, func(context.Context) error { pub.Close(); return nil })
		events = pub
	}

	c := Assemble(cfg, logger, stores, rdb, photos, events)
	c.closers = closers
	return c, nil
}

func closeGCS(c *storage.Client) func(context.Context) error {
	return func(context.Context) error { return c.Close() }
}

// Close releases clients in reverse order of creation.
func (c *Container) Close(ctx context.Context) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil {
			helpers.LogError(c.Logger, "close failed", err, nil)
		}
	}
	c.closers = nil
}
