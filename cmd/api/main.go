package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/planfit/planfit/internal/envstruct"
	"github.com/planfit/planfit/internal/errors"
	"github.com/planfit/planfit/internal/logging"
	"github.com/planfit/planfit/internal/plan"
	"github.com/planfit/planfit/internal/pprofserver"
)

type application struct {
	logger      *slog.Logger
	planService *plan.Service
	corsOrigins []string
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"PLANFIT_ADDR" envDefault:"localhost:8080"`
	// PProfAddr is the optional address to listen on for the pprof server.
	PProfAddr string `env:"PLANFIT_PPROF_ADDR" envDefault:""`
	// CORSOrigins is a comma-separated list of origins allowed to call the API.
	CORSOrigins string `env:"PLANFIT_CORS_ORIGINS" envDefault:"*"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	if cfg.PProfAddr != "" {
		pprofserver.Launch(ctx, cfg.PProfAddr, logger)
	}

	app := application{
		logger:      logger,
		planService: plan.NewService(logger),
		corsOrigins: splitOrigins(cfg.CORSOrigins),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	// Missing .env is fine, the config has defaults for everything.
	_ = godotenv.Load()

	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
