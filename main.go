package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/spf13/cobra"

	"github.com/oaiiae/huma-contacts/cli/api"
	"github.com/oaiiae/huma-contacts/cli/logger"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	title    = "contacts"
	version  = "dev"
	revision = ""
	created  = ""
)

// Options for the CLI. Pass flags such as `--server.port` or set `SERVICE_*` env vars.
type Options struct {
	Logger logger.Options
	Server api.ServerOptions
	Router api.RouterOptions
	Store  api.StoreOptions
}

func main() {
	var handler http.Handler

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		log, closeLog := logger.New(&options.Logger)

		store, closeStore, err := api.NewStore(context.Background(), &options.Store, log)
		if err != nil {
			log.Error("could not open store", "err", err)
			os.Exit(1)
		}
		handler = api.NewRouter(&options.Router, title, version, revision, created, store, log)
		srv := api.NewServer(&options.Server, handler, log)

		hooks.OnStart(func() {
			log.Info("listening", "addr", srv.Addr, "version", version)
			err := srv.ListenAndServe()
			if err != http.ErrServerClosed {
				log.Error("failed to listen and serve", "err", err)
			} else {
				log.Info("server closed")
			}
		})
		hooks.OnStop(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			err := srv.Shutdown(ctx)
			if err != nil {
				log.Warn("could not shutdown the server", "err", err)
			}
			if err = closeStore(); err != nil {
				log.Warn("could not close the store", "err", err)
			}
			if err = closeLog(); err != nil {
				slog.Warn("could not close the log file", "err", err)
			}
		})
	})

	cli.Root().Use = title
	cli.Root().Version = version
	cli.Root().AddCommand(&cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI specification as yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if handler == nil {
				return fmt.Errorf("api is not configured")
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
			if rec.Code != http.StatusOK {
				return fmt.Errorf("get openapi: %s", http.StatusText(rec.Code))
			}
			_, err := cmd.OutOrStdout().Write(rec.Body.Bytes())
			return err
		},
	})
	cli.Run()
}
