// Command airlink runs the airline management console, or the sort
// benchmark sweep with -bench.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/airlink/airline"
	"github.com/katalvlaran/airlink/bench"
	"github.com/katalvlaran/airlink/config"
	"github.com/katalvlaran/airlink/console"
	"github.com/katalvlaran/airlink/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "airlink:", err)
		}
		stop()
		os.Exit(1)
	}
}

// run parses args, loads the configuration and runs either the bench sweep
// or the console over stdin/stdout until ctx is cancelled.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("airlink", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file (defaults are used when empty)")
	runBench := fs.Bool("bench", false, "run the sort benchmark sweep and exit")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9102")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if *metricsAddr != "" && cfg.Metrics.Enabled {
		srv := &http.Server{Addr: *metricsAddr, Handler: metrics.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("serving metrics", zap.String("addr", *metricsAddr))
	}

	if *runBench {
		rep, err := bench.Run(ctx, cfg.Bench, bench.WithLogger(logger))
		if err != nil {
			return err
		}
		return rep.WriteTable(stdout)
	}

	svc, err := airline.New(cfg, logger)
	if err != nil {
		return err
	}
	err = console.Run(ctx, stdin, stdout, svc)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
