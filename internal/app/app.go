package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aturgenev/minimart/internal/config"
	"github.com/aturgenev/minimart/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

// Application runs one of the four services: it owns the config, the HTTP
// server and the shutdown sequence. The service-specific wiring is supplied
// by the per-service constructors in this package.
type Application struct {
	name    string
	address func(cfg *config.Config) string
	build   func(cfg *config.Config) (http.Handler, error)

	cfg   *config.Config
	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func newApplication(
	name string,
	address func(cfg *config.Config) string,
	build func(cfg *config.Config) (http.Handler, error),
) *Application {
	return &Application{
		name:    name,
		address: address,
		build:   build,
		errCh:   make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	if err := logger.InitLogger(cfg.LogLvl, a.name); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	handler, err := a.build(cfg)
	if err != nil {
		zap.L().Error("build failed: ", zap.Error(err))
		return fmt.Errorf("can't build %s: %w", a.name, err)
	}

	if err := a.startHTTPServer(ctx, a.address(cfg), handler); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context, addr string, handler http.Handler) error {
	server := http.Server{
		Addr:    addr,
		Handler: handler,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
