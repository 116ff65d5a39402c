// Package server initializes and runs the catalog server: it opens the
// database, applies migrations, wires services and serves the REST API and
// the gRPC health service until shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/animalcatalog/internal/logging"
	"github.com/dmitrijs2005/animalcatalog/internal/server/config"
	"github.com/dmitrijs2005/animalcatalog/internal/server/httpapi"
	"github.com/dmitrijs2005/animalcatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/animalcatalog/internal/server/services"

	gs "github.com/dmitrijs2005/animalcatalog/internal/server/grpc"
)

const shutdownTimeout = 10 * time.Second

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

// NewApp opens and migrates the database and builds the HTTP handler.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.New(c.DBDriver)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	handler := httpapi.NewRouter(httpapi.Deps{
		Users:          services.NewUserService(db, rm, c),
		Animals:        services.NewAnimalService(db, rm),
		Images:         services.NewImageService(c),
		DB:             db,
		Logger:         logger.With("module", "http"),
		AllowedOrigins: c.CORSAllowedOrigins,
	})

	return &App{config: c, logger: logger, db: db, handler: handler}, nil
}

func openDB(ctx context.Context, c *config.Config) (*sql.DB, error) {
	db, err := sqlOpen(c.SQLDriverName(), c.DatabaseDSN())
	if err != nil {
		return nil, err
	}

	if c.DBDriver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Handler returns the REST API handler.
func (app *App) Handler() http.Handler {
	return app.handler
}

// initSignalHandler cancels on SIGINT/SIGTERM/SIGQUIT. The returned channel
// is closed once the handler has unregistered, which happens on the first
// signal or when ctx is done.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) <-chan struct{} {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer signal.Stop(sigs)

		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
	return done
}

func (app *App) startHTTPServer(ctx context.Context, lis net.Listener) error {
	srv := httpapi.NewServer(lis.Addr().String(), app.handler)

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "http shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or a SIGINT/SIGTERM arrives, then shuts
// both servers down and closes the database. The first server error is
// returned.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	sigDone := app.initSignalHandler(ctx, cancelFunc)
	defer func() {
		cancelFunc()
		<-sigDone
	}()

	lis, err := net.Listen("tcp", app.config.ListenAddr())
	if err != nil {
		_ = app.db.Close()
		return err
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.startHTTPServer(ctx, lis); err != nil {
			fail(err)
		}
	}()

	if app.config.GRPCHealthAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := gs.NewHealthServer(app.config.GRPCHealthAddr, app.logger).Run(ctx); err != nil {
				fail(err)
			}
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")

	return firstErr
}
