package app

import (
	"context"
	"log/slog"

	"inkai_studio/internal/config"
	"inkai_studio/internal/repository"
	"inkai_studio/internal/storage/postgresql"

	httpapp "inkai_studio/internal/app/http"
	gallerysvc "inkai_studio/internal/services/gallery_service"
	generationsvc "inkai_studio/internal/services/generation_service"
	redisapp "inkai_studio/internal/storage/redis"
	httprouters "inkai_studio/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Generation *generationsvc.GenerationService

	redis    *redisapp.Client
	postgres *postgresql.Storage
}

func New(log *slog.Logger, cfg *config.Config) (*App, error) {
	var (
		repo repository.ItemRepository
		pg   *postgresql.Storage
	)

	// При заданном DSN галерея работает из PostgreSQL, иначе — фикстуры
	if cfg.DSN != "" {
		storage, err := postgresql.New(context.Background(), cfg.DSN)
		if err != nil {
			return nil, err
		}
		pg = storage
		repo = repository.NewPostgresItemRepo(storage.Pool())
	} else {
		fixtures, err := repository.NewFixtureRepo(cfg.Gallery.FixturePath)
		if err != nil {
			return nil, err
		}
		repo = fixtures
	}

	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	favorites := repository.NewRedisFavoritesRepo(redisClient)

	galleryService := gallerysvc.NewGalleryService(log, repo, favorites, cfg.Gallery.CacheTTL)
	generationService := generationsvc.NewGenerationService(
		log,
		generationsvc.NewSimulatedDriver(cfg.Generation.StepDelay),
	)

	routers := httprouters.NewRouter(log, galleryService, generationService)
	server := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, routers)

	return &App{
		HTTPServer: server,
		Generation: generationService,
		redis:      redisClient,
		postgres:   pg,
	}, nil
}

func (a *App) Stop() {
	a.Generation.Shutdown()

	if err := a.HTTPServer.Stop(); err != nil {
		panic(err)
	}

	a.redis.Close()
	if a.postgres != nil {
		a.postgres.Stop()
	}
}
