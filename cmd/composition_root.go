package cmd

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/auth"
	"fooddelivery/internal/adapters/out/identity"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/rpc"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	caller     rpc.Caller
	policy     ports.AccessPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, caller rpc.Caller, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := auth.NewCasbinPolicy()
	if err != nil {
		return nil, fmt.Errorf("access policy: %w", err)
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		caller:     caller,
		policy:     policy,
		logger:     logger,
	}, nil
}

// NewServer builds the message server of service with every kind bound.
func (c *CompositionRoot) NewServer(service rpc.Service) (*http.Server, error) {
	s := http.NewServer(service, c.logger)

	switch service {
	case rpc.Identity:
		h, err := c.CreateIdentityHandlers()
		if err != nil {
			return nil, err
		}
		h.Register(s)
	case rpc.Catalog:
		c.CreateCatalogHandlers().Register(s)
	case rpc.Order:
		c.CreateOrderHandlers().Register(s)
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}

	return s, nil
}

// Identity service

func (c *CompositionRoot) CreateIdentityHandlers() (*http.IdentityHandlers, error) {
	issuer, err := auth.NewJWTIssuer(c.cfg.JWTSecret, c.cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}
	hasher := auth.NewBcryptHasher(0)
	f := c.userUoWFactory()

	return http.NewIdentityHandlers(
		commands.NewRegisterUserCommandHandler(f, hasher, issuer),
		commands.NewLoginUserCommandHandler(f, hasher, issuer),
		commands.NewSetRiderAvailabilityCommandHandler(f, issuer, c.policy),
		queries.NewGetUserByTokenQueryHandler(c.gormDB, issuer),
		queries.NewListUsersByRoleQueryHandler(c.gormDB),
		queries.NewGetUsersByIDsQueryHandler(c.gormDB),
	), nil
}

// Catalog service

func (c *CompositionRoot) CreateCatalogHandlers() *http.CatalogHandlers {
	f := c.productUoWFactory()
	gateway := c.identityGateway()

	return http.NewCatalogHandlers(
		commands.NewAddProductCommandHandler(f, gateway, c.policy),
		commands.NewRemoveProductCommandHandler(f, gateway, c.policy),
		queries.NewListProductsByMerchantQueryHandler(c.gormDB),
		queries.NewListProductsByNameQueryHandler(c.gormDB),
	)
}

// Order service

func (c *CompositionRoot) CreateOrderHandlers() *http.OrderHandlers {
	f := c.orderUoWFactory()
	gateway := c.identityGateway()

	return http.NewOrderHandlers(
		commands.NewCreateOrderCommandHandler(f, gateway, c.policy),
		commands.NewAssignRiderCommandHandler(f),
		commands.NewAdvanceOrderStatusCommandHandler(f, gateway, c.policy),
		queries.NewGetUnassignedOrdersQueryHandler(c.gormDB),
		queries.NewGetOrdersByUserQueryHandler(c.gormDB, gateway),
		queries.NewGetOrderByIDQueryHandler(c.gormDB),
	)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoWFactory(), c.identityGateway())
}

func (c *CompositionRoot) CreateDispatchJob() *jobs.DispatchJob {
	return jobs.NewDispatchJob(c.CreateDispatchOrderCommandHandler(), c.cfg.DispatchSchedule, c.logger)
}

func (c *CompositionRoot) identityGateway() *identity.Gateway {
	return identity.NewGateway(c.caller, c.logger)
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
