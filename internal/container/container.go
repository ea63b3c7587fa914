package container

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"vitibrasil/scraper/internal/client"
	"vitibrasil/scraper/internal/config"
	"vitibrasil/scraper/internal/domain"
	"vitibrasil/scraper/internal/proxy"
	"vitibrasil/scraper/internal/server"
	"vitibrasil/scraper/internal/service"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Catalog *domain.Catalog
	Client  client.VitibrasilClient
	Service *service.Service
	Server  *server.Server
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	proxySupplier, err := proxy.NewSupplier(context.Background(), cfg.Vitibrasil.Proxies, cfg.Vitibrasil.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize proxy supplier: %w", err)
	}

	catalog := domain.NewCatalog()
	container.Catalog = catalog

	vitibrasilClient := client.NewVitibrasilClient(cfg.Vitibrasil, proxySupplier)
	container.Client = vitibrasilClient

	svc := service.NewService(catalog, vitibrasilClient, cfg.Vitibrasil.BaseURL)
	container.Service = svc

	container.Server = server.New(cfg.Server, svc)

	return container, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Server.ListenAndServe()
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return c.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
