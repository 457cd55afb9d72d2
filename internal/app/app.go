package app

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/movieverse/movie-catalog-api/internal/blob"
	"github.com/movieverse/movie-catalog-api/internal/domain"
	"github.com/movieverse/movie-catalog-api/internal/repository"
	appvalidator "github.com/movieverse/movie-catalog-api/internal/validator"
	"github.com/movieverse/movie-catalog-api/internal/vcs"
	"github.com/movieverse/movie-catalog-api/migrations"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
)

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	blobStore      blob.Store

	genreRepo  domain.GenreRepository
	actorRepo  domain.ActorRepository
	movieRepo  domain.MovieRepository
	cinemaRepo domain.CinemaRoomRepository
	reviewRepo domain.ReviewRepository
	userRepo   domain.UserRepository
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorURL string
	DB               DBConfig
	Redis            RedisConfig
	Blob             BlobConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type BlobConfig struct {
	Dir       string
	PublicURL string
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.Blob.Dir, "blob-dir", "./uploads", "Directory for stored images")
	flag.StringVar(&cfg.Blob.PublicURL, "blob-public-url", "http://localhost:3000/static", "Public base URL for stored images")

	flag.StringVar(&cfg.OtelCollectorURL, "otel-collector-url", "", "OpenTelemetry collector URL (empty disables telemetry)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, err := New(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.serve()
}

// New wires the application from its configuration: database pool (with
// migrations applied), redis-backed sessions, blob store and repositories.
func New(cfg Config, logger *slog.Logger) (*Application, error) {
	if err := runMigrations(cfg.DB.DSN); err != nil {
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	db, err := newDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	app := &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      appvalidator.NewValidator(),
		sessionManager: newSessionManager(redisClient),
		blobStore:      blob.NewDiskStore(cfg.Blob.Dir, cfg.Blob.PublicURL),
		genreRepo:      repository.NewPostgresGenreRepository(db),
		actorRepo:      repository.NewPostgresActorRepository(db),
		movieRepo:      repository.NewPostgresMovieRepository(db, logger),
		cinemaRepo:     repository.NewPostgresCinemaRoomRepository(db),
		reviewRepo:     repository.NewPostgresReviewRepository(db),
		userRepo:       repository.NewPostgresUserRepository(db),
	}

	return app, nil
}

func (app *Application) Close() {
	if app.db != nil {
		app.db.Close()
	}
	if app.redis != nil {
		app.redis.Close()
	}
}

func runMigrations(dsn string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func newSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func newRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

func newDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownError; err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("movie-catalog-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Post("/users/login", app.Login)
	r.Post("/users/logout", app.Logout)

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", app.ListGenres)
		r.Post("/", app.CreateGenre)
		r.Get("/{id}", app.GetGenre)
		r.Put("/{id}", app.ReplaceGenre)
		r.Delete("/{id}", app.DeleteGenre)
	})

	r.Route("/actors", func(r chi.Router) {
		r.Get("/", app.ListActors)
		r.Post("/", app.CreateActor)
		r.Get("/{id}", app.GetActor)
		r.Put("/{id}", app.ReplaceActor)
		r.Patch("/{id}", app.PatchActor)
		r.Delete("/{id}", app.DeleteActor)
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.ListMovies)
		r.Get("/filter", app.FilterMovies)
		r.Get("/showcase", app.GetMovieShowcase)
		r.Post("/", app.CreateMovie)
		r.Get("/{id}", app.GetMovie)
		r.Put("/{id}", app.ReplaceMovie)
		r.Patch("/{id}", app.PatchMovie)
		r.Delete("/{id}", app.DeleteMovie)

		r.Route("/{movieID}/reviews", func(r chi.Router) {
			r.Get("/", app.ListReviews)
			r.With(app.requireAuthentication).Post("/", app.CreateReview)
			r.With(app.requireAuthentication).Put("/{reviewID}", app.ReplaceReview)
			r.With(app.requireAuthentication).Delete("/{reviewID}", app.DeleteReview)
		})
	})

	r.Route("/cinema-rooms", func(r chi.Router) {
		r.Get("/", app.ListCinemaRooms)
		r.Get("/nearby", app.GetNearbyCinemaRooms)
		r.Post("/", app.CreateCinemaRoom)
		r.Get("/{id}", app.GetCinemaRoom)
		r.Put("/{id}", app.ReplaceCinemaRoom)
		r.Delete("/{id}", app.DeleteCinemaRoom)
	})

	return r
}
