package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/config"
	stripeClient "github.com/aaravmahajanofficial/templatehub/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const componentVersion = "1.0.0"

// Pinger is satisfied by every storage engine.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Endpoints are the dependencies probed by /api/health. Stripe may be nil when
// payments are not configured.
type Endpoints struct {
	Storage Pinger
	Stripe  stripeClient.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "storage",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if err := endpoints.Storage.Ping(ctx); err != nil {
					return fmt.Errorf("storage engine %q unreachable: %w", cfg.Storage.Driver, err)
				}
				return nil
			},
		},
	}

	// Redis and Stripe are optional; losing them degrades the service instead
	// of taking it down.
	if cfg.RedisConnect.Enabled() {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	if endpoints.Stripe != nil {
		checks = append(checks, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				if _, err := endpoints.Stripe.GetBalance(ctx); err != nil {
					return fmt.Errorf("failed to connect to stripe: %w", err)
				}
				return nil
			},
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: componentVersion,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
