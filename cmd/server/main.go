package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"uptime/internal/app/server/api"
	"uptime/internal/app/server/config"
	"uptime/internal/infrastructure/storage"
	"uptime/internal/infrastructure/storage/file"
	"uptime/internal/utils/logger"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

func main() {
	conf := config.MustLoad()
	log := logger.NewWithLevel(conf.Env, conf.Logger.LogLevel)

	if err := run(conf, log); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	store, err := file.New(conf.Storage.DataDir, log, storage.Collections()...)
	if err != nil {
		return err
	}

	router, err := api.New(store, conf, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	servers := []*http.Server{newServer(conf.Server.RunAddress, conf, router)}
	if conf.Server.HTTPSEnabled() {
		servers = append(servers, newServer(conf.Server.HTTPSAddress, conf, router))
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", slog.String("address", conf.Server.RunAddress), slog.String("env", conf.Env))
		return listen(servers[0].ListenAndServe)
	})

	if conf.Server.HTTPSEnabled() {
		g.Go(func() error {
			log.Info("starting https server", slog.String("address", conf.Server.HTTPSAddress))
			return listen(func() error {
				return servers[1].ListenAndServeTLS(conf.Server.TLSCertFile, conf.Server.TLSKeyFile)
			})
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func newServer(addr string, conf *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: conf.Server.ReadTimeout,
		ReadTimeout:       conf.Server.ReadTimeout,
		WriteTimeout:      conf.Server.WriteTimeout,
	}
}

func listen(serve func() error) error {
	if err := serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
