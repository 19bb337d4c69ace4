// Command portal serves the resource hub's navigation, session and
// notification layer on top of the remote REST API.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/resourcehub/portal/internal/api"
	"github.com/resourcehub/portal/internal/api/handler"
	"github.com/resourcehub/portal/internal/api/metrics"
	"github.com/resourcehub/portal/internal/core/notify"
	"github.com/resourcehub/portal/internal/core/routing"
	"github.com/resourcehub/portal/internal/core/service"
	"github.com/resourcehub/portal/internal/infrastructure/apiclient"
	"github.com/resourcehub/portal/internal/pkg/config"
	"github.com/resourcehub/portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title       Resource Portal API
// @version     1.0
// @description Session, navigation and notification layer of the resource hub.
// @BasePath    /
func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.IsProduction(), Env: cfg.Env})
	log := logger.For("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("portal stopped with error")
	}
	log.Info().Msg("portal stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.For("main")

	store, closeStore, err := openStore(ctx, cfg, logger.For("storage"))
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			log.Warn().Err(err).Msg("closing storage")
		}
	}()

	// The client reads the token from the session service, which in turn
	// logs in through the client.
	var sessions *service.SessionService
	client, err := apiclient.New(apiclient.Config{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		LongTimeout: cfg.API.LongTimeout,
		Observer:    metrics.Recorder{},
	}, apiclient.TokenFunc(func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	}), logger.For("apiclient"))
	if err != nil {
		return err
	}

	sessions, err = service.NewSessionService(ctx, client, store, logger.For("session"))
	if err != nil {
		return err
	}

	defaults := notify.DefaultOptions()
	defaults.Duration = cfg.Notify.Duration
	notes := notify.NewManager(
		notify.NewLogDisplay(logger.For("notify")),
		logger.For("notify"),
		notify.WithDefaults(defaults),
		notify.WithTransition(cfg.Notify.Transition),
		notify.WithObserver(metrics.Recorder{}),
	)
	defer notes.Close()

	e := api.NewRouter(api.Deps{
		Sessions: sessions,
		Notes:    notes,
		Views:    routing.MustTable(routing.DefaultRoutes),
		Ready:    map[string]handler.Pinger{"storage": store, "api": client},
		Log:      logger.For("http"),
	})

	srv := newServer(net.JoinHostPort("", cfg.Port), e)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("api", cfg.API.BaseURL).Msg("portal listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newServer builds the HTTP server. Request contexts are detached from the
// signal context so Shutdown can drain in-flight requests.
func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.Background() },
	}
}
