// Package server orchestrates all components: COMMS client, DB, feedback
// router, transports, HTTP endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	comms "github.com/nats-io/nats.go"

	"github.com/morezero/interactions/internal/config"
	"github.com/morezero/interactions/internal/feedback"
	"github.com/morezero/interactions/pkg/commsutil"
	"github.com/morezero/interactions/pkg/db"
	"github.com/morezero/interactions/pkg/dispatcher"
	"github.com/morezero/interactions/pkg/events"
	"github.com/morezero/interactions/pkg/transport"
)

const logPrefix = "server:server"

// recentDispatches is how many dispatches the home page shows.
const recentDispatches = 50

// Server is the interactions orchestrator.
type Server struct {
	cfg        *config.Config
	nc         *comms.Conn
	pool       *pgxpool.Pool
	router     *dispatcher.Router[feedback.Deps]
	stats      *dispatchStats
	transports []transport.Transport
	webhook    http.Handler
	httpServer *http.Server
	checks     map[string]func(context.Context) error
}

// Run starts the server, blocks until shutdown signal, then cleans up.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("%s - failed to load config: %w", logPrefix, err)
	}
	SetupLogging(cfg.LogLevel)

	if err := cfg.ValidateForServe(); err != nil {
		return err
	}

	slog.Info(fmt.Sprintf("%s - Starting interactions", logPrefix))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	if err := s.Start(ctx); err != nil {
		s.Shutdown(context.Background())
		return err
	}

	slog.Info(fmt.Sprintf("%s - Interactions server is ready", logPrefix))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info(fmt.Sprintf("%s - Received signal %s, shutting down", logPrefix, sig))

	// In-flight dispatches see the cancellation only after Shutdown returns.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	s.Shutdown(shutdownCtx)

	slog.Info(fmt.Sprintf("%s - Shutdown complete", logPrefix))
	return nil
}

// SetupLogging installs the default slog text handler at the given level
// (debug, info, warn or error; anything else means info).
func SetupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

// New connects the server's dependencies and builds the router and
// transports. Nothing receives interactions until Start.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		stats:  newDispatchStats(recentDispatches),
		checks: make(map[string]func(context.Context) error),
	}

	// Step 1: Connect to COMMS when a transport or the event stream needs it
	if cfg.NeedsComms() {
		nc, err := commsutil.Connect(cfg.COMMSURL, cfg.COMMSName)
		if err != nil {
			return nil, fmt.Errorf("%s - failed to connect to COMMS: %w", logPrefix, err)
		}
		s.nc = nc
		s.checks["comms"] = func(context.Context) error {
			if !nc.IsConnected() {
				return fmt.Errorf("COMMS connection %s", nc.Status())
			}
			return nil
		}
	}

	// Step 2: Feedback store
	store, err := s.openStore(ctx)
	if err != nil {
		s.Shutdown(ctx)
		return nil, err
	}

	// Step 3: Router
	publishers := []events.EventPublisher{s.stats.publisher()}
	if cfg.PublishEvents {
		publishers = append(publishers, events.NewCommsPublisher(s.nc, &events.CommsPublisherOpts{
			GlobalSubject: cfg.DispatchedEventSubject,
		}))
	}
	s.router = feedback.NewRouter(feedback.Deps{Store: store}, &dispatcher.RouterOpts{
		Publisher: events.NewMultiPublisher(publishers...),
	})
	slog.Info(fmt.Sprintf("%s - Registered %d routes", logPrefix, len(s.router.Routes())))

	// Step 4: Transports
	if err := s.buildTransports(); err != nil {
		s.Shutdown(ctx)
		return nil, err
	}

	addr := cfg.HTTPAddr
	if addr == "" {
		addr = fmt.Sprintf(":%d", cfg.HTTPPort)
	}
	s.httpServer = &http.Server{Addr: addr, Handler: s.handler(), ReadHeaderTimeout: 10 * time.Second}
	return s, nil
}

// openStore returns the database repository, or an in-memory store when no
// DATABASE_URL is configured.
func (s *Server) openStore(ctx context.Context) (feedback.FeedbackStore, error) {
	if s.cfg.DatabaseURL == "" {
		slog.Warn(fmt.Sprintf("%s - DATABASE_URL not set, keeping feedback in memory", logPrefix))
		return feedback.NewMemoryStore(), nil
	}

	pool, err := db.NewPool(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s - failed to connect to database: %w", logPrefix, err)
	}
	s.pool = pool
	s.checks["database"] = pool.Ping

	if s.cfg.RunMigrations {
		migrationSQL, err := db.LoadMigrationFiles(s.cfg.MigrationPath)
		if err != nil {
			return nil, fmt.Errorf("%s - failed to load migrations: %w", logPrefix, err)
		}
		if err := db.RunMigrations(ctx, pool, migrationSQL); err != nil {
			return nil, fmt.Errorf("%s - failed to run migrations: %w", logPrefix, err)
		}
	}
	return db.NewRepository(pool), nil
}

func (s *Server) buildTransports() error {
	timeout := s.cfg.RequestTimeout
	for _, name := range s.cfg.EnabledTransports() {
		switch name {
		case config.TransportGateway:
			g, err := transport.NewGateway(s.cfg.DiscordToken, s.router, &transport.GatewayOpts{Timeout: timeout})
			if err != nil {
				return err
			}
			s.transports = append(s.transports, g)
		case config.TransportWebhook:
			h, err := transport.NewWebhook(s.cfg.DiscordPublicKey, s.router, &transport.WebhookOpts{Timeout: timeout})
			if err != nil {
				return err
			}
			s.webhook = h
		case config.TransportComms:
			s.transports = append(s.transports, transport.NewComms(s.nc, s.router, &transport.CommsOpts{
				Subject: s.cfg.InteractionsSubject,
				Queue:   s.cfg.COMMSQueue,
				Timeout: timeout,
			}))
		default:
			return fmt.Errorf("%s - unknown transport %q", logPrefix, name)
		}
	}
	return nil
}

// Start starts every transport and the HTTP endpoint. If a transport fails
// to start, the ones already started are stopped again.
func (s *Server) Start(ctx context.Context) error {
	for i, t := range s.transports {
		if err := t.Start(ctx); err != nil {
			s.stopTransports(ctx, s.transports[:i])
			s.transports = nil
			return fmt.Errorf("%s - failed to start %s transport: %w", logPrefix, t.Name(), err)
		}
		slog.Info(fmt.Sprintf("%s - Started %s transport", logPrefix, t.Name()))
	}

	go func() {
		slog.Info(fmt.Sprintf("%s - HTTP server listening on %s", logPrefix, s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error(fmt.Sprintf("%s - HTTP server error: %v", logPrefix, err))
		}
	}()
	return nil
}

// Shutdown stops the transports, then the HTTP endpoint, then closes COMMS
// and the database pool. It is safe on a partially built server.
func (s *Server) Shutdown(ctx context.Context) {
	s.stopTransports(ctx, s.transports)
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			slog.Warn(fmt.Sprintf("%s - HTTP shutdown: %v", logPrefix, err))
		}
	}
	commsutil.Drain(s.nc)
	if s.pool != nil {
		s.pool.Close()
	}
}

// stopTransports stops ts in reverse order.
func (s *Server) stopTransports(ctx context.Context, ts []transport.Transport) {
	for i := len(ts) - 1; i >= 0; i-- {
		if err := ts[i].Stop(ctx); err != nil {
			slog.Warn(fmt.Sprintf("%s - failed to stop %s transport: %v", logPrefix, ts[i].Name(), err))
		}
	}
}
