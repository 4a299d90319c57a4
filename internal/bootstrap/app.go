package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/airport-ops/api"
	"github.com/Domenick1991/airport-ops/config"
	"github.com/Domenick1991/airport-ops/internal/kafka"
	"github.com/Domenick1991/airport-ops/internal/repository"
	"github.com/Domenick1991/airport-ops/internal/repository/memory"
	"github.com/Domenick1991/airport-ops/internal/service/auth"
	"github.com/Domenick1991/airport-ops/internal/service/changes"
	"github.com/Domenick1991/airport-ops/internal/service/employees"
	"github.com/Domenick1991/airport-ops/internal/service/flights"
	"github.com/Domenick1991/airport-ops/internal/service/gates"
	"github.com/Domenick1991/airport-ops/internal/service/passengers"
	"github.com/Domenick1991/airport-ops/internal/service/stats"
	"github.com/Domenick1991/airport-ops/internal/session"
	"github.com/Domenick1991/airport-ops/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App holds everything the HTTP server needs, wired from one Config.
type App struct {
	Storage  repository.Storage
	Services web.Services
	Sessions *session.Manager
	API      api.Handlers
	Pages    *web.Handler

	closers []func()
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	storage, closeStorage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.Storage = storage
	a.closers = append(a.closers, closeStorage)

	store, err := a.sessionStore(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Sessions = session.NewManager(store, session.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.Secure,
	})

	var events *changes.Publisher
	var flightOpts []flights.FlightServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		a.closers = append(a.closers, func() { _ = producer.Close() })
		events = changes.NewPublisher(producer, cfg.Kafka.EventsTopic)
		flightOpts = append(flightOpts,
			flights.WithChanges(events),
			flights.WithStatusNotifications(producer, cfg.Kafka.NotificationsTopic),
		)
		log.Printf("publishing change events to %s", cfg.Kafka.EventsTopic)
	}

	a.Services = web.Services{
		Auth:       auth.NewAuthService(storage.Users, cfg.Auth.BcryptCost),
		Flights:    flights.NewFlightService(storage.Flights, flightOpts...),
		Gates:      gates.NewGateService(storage.Gates, events),
		Employees:  employees.NewEmployeeService(storage.Employees, events),
		Passengers: passengers.NewPassengerService(storage.Passengers, events),
		Stats:      stats.NewStatsService(storage.Stats, storage.Passengers),
	}
	a.API = api.Handlers{
		Auth:       api.NewAuthHandler(a.Services.Auth, a.Sessions),
		Flights:    api.NewFlightHandler(a.Services.Flights),
		Gates:      api.NewGateHandler(a.Services.Gates),
		Employees:  api.NewEmployeeHandler(a.Services.Employees),
		Passengers: api.NewPassengerHandler(a.Services.Passengers),
		Stats:      api.NewStatsHandler(a.Services.Stats),
	}
	if a.Pages, err = web.New(a.Services, a.Sessions); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) sessionStore(ctx context.Context, cfg *config.Config) (session.Store, error) {
	if cfg.Redis.Addr == "" {
		log.Printf("sessions kept in process memory")
		return session.NewMemoryStore(cfg.Session.TTL), nil
	}
	client := session.NewRedisClient(cfg.Redis)
	a.closers = append(a.closers, func() { _ = client.Close() })
	store := session.NewRedisStore(client, cfg.Session.TTL)
	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
	}
	return store, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// OpenStorage connects the configured storage driver. The postgres driver
// applies migrations first when database.auto_migrate is set.
func OpenStorage(ctx context.Context, cfg *config.Config) (repository.Storage, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		var opts []memory.Option
		if cfg.Storage.Seed {
			opts = append(opts, memory.WithSeed())
		}
		log.Printf("using in-memory storage (seed=%t)", cfg.Storage.Seed)
		return memory.New(opts...).Storage(), func() {}, nil
	}

	pool, err := OpenPool(ctx, cfg)
	if err != nil {
		return repository.Storage{}, nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			pool.Close()
			return repository.Storage{}, nil, err
		}
	}
	return repository.NewPGStorage(pool), pool.Close, nil
}

func OpenPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
