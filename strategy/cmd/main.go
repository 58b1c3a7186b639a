package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-leo/behavioral-pattern/internal/config"
	"github.com/go-leo/behavioral-pattern/internal/logx"
	"github.com/go-leo/behavioral-pattern/strategy"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// The strategy pattern selects an algorithm at composition time. The checkout service
// below is handed one payment strategy, looked up by key, and delegates every payment to it
// without knowing which one it holds.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := logx.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), cfg, os.Stdout, logger); err != nil {
		logger.Error("checkout failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, out io.Writer, logger *zap.Logger) error {
	registry := strategy.DefaultRegistry(out)
	paymentStrategy, err := resolve(registry, cfg.PaymentMethod)
	if errors.Is(err, strategy.ErrNotFound) {
		logger.Warn("invalid payment method", zap.String("method", cfg.PaymentMethod), zap.Error(err))
		_, err = fmt.Fprintln(out, "Invalid payment method selected.")
		return err
	}
	if err != nil {
		return err
	}

	opts := []strategy.Option{strategy.Decorate(strategy.Logging(logger.With(zap.String("method", cfg.PaymentMethod))))}
	if cfg.StrictAmount {
		opts = append(opts, strategy.Guard(strategy.Positive()))
	}
	checkoutService := strategy.NewCheckoutService(paymentStrategy, opts...)
	return checkoutService.Checkout(ctx, cfg.Amount)
}

func resolve(registry *strategy.Registry, key string) (strategy.PaymentStrategy, error) {
	method, err := strategy.ParseMethod(key)
	if err != nil {
		return nil, err
	}
	return registry.Resolve(method)
}
