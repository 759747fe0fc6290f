// Package container wires stores and use cases from the configuration. The
// HTTP server and the CLI report command share it.
package container

import (
	"context"
	"fmt"

	"shiv_accounts/internal/adapter/persistence/memory"
	"shiv_accounts/internal/adapter/persistence/repository"
	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/infrastructure/config"
	"shiv_accounts/internal/infrastructure/database"
	"shiv_accounts/internal/infrastructure/seed"
	"shiv_accounts/internal/usecase"

	"github.com/sirupsen/logrus"
)

type Container struct {
	Stores seed.Stores

	Contacts       *usecase.CatalogUseCase[entities.Contact]
	Products       *usecase.CatalogUseCase[entities.Product]
	Taxes          *usecase.CatalogUseCase[entities.Tax]
	Accounts       *usecase.CatalogUseCase[entities.Account]
	PurchaseOrders *usecase.PurchaseOrderUseCase
	Reports        *usecase.ReportUseCase
}

// New opens the configured stores, applies the seed dataset when enabled and
// builds the use cases on top.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	stores, err := openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Seed.Enabled {
		ds, err := seed.Default()
		if err != nil {
			return nil, err
		}
		if _, err := ds.Apply(ctx, stores); err != nil {
			return nil, fmt.Errorf("apply seed data: %w", err)
		}
	}

	return FromStores(stores), nil
}

// FromStores builds the use cases over already opened stores.
func FromStores(s seed.Stores) *Container {
	return &Container{
		Stores:         s,
		Contacts:       usecase.NewContactUseCase(s.Contacts),
		Products:       usecase.NewProductUseCase(s.Products),
		Taxes:          usecase.NewTaxUseCase(s.Taxes),
		Accounts:       usecase.NewAccountUseCase(s.Accounts),
		PurchaseOrders: usecase.NewPurchaseOrderUseCase(s.PurchaseOrders, s.Contacts, s.Products),
		Reports:        usecase.NewReportUseCase(s.Contacts, s.Products, s.Accounts, s.PurchaseOrders),
	}
}

func openStores(ctx context.Context, cfg *config.Config) (seed.Stores, error) {
	log := logrus.WithFields(logrus.Fields{"component": "container", "driver": cfg.Storage.Driver})

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Info("using in-memory stores")
		return MemoryStores(), nil

	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return seed.Stores{}, err
		}
		if cfg.AWS.CreateTables {
			if _, err := database.EnsureTables(ctx, ddb, database.TableNames(cfg)); err != nil {
				return seed.Stores{}, err
			}
		}
		log.WithField("endpoint", cfg.AWS.Endpoint).Info("using dynamodb stores")
		return seed.Stores{
			Contacts:       repository.NewContactDynamoRepository(ddb, cfg.Tables.Contacts),
			Products:       repository.NewProductDynamoRepository(ddb, cfg.Tables.Products),
			Taxes:          repository.NewTaxDynamoRepository(ddb, cfg.Tables.Taxes),
			Accounts:       repository.NewAccountDynamoRepository(ddb, cfg.Tables.Accounts),
			PurchaseOrders: repository.NewPurchaseOrderDynamoRepository(ddb, cfg.Tables.PurchaseOrders),
		}, nil

	default:
		return seed.Stores{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func MemoryStores() seed.Stores {
	return seed.Stores{
		Contacts:       memory.NewRepository[entities.Contact](),
		Products:       memory.NewRepository[entities.Product](),
		Taxes:          memory.NewRepository[entities.Tax](),
		Accounts:       memory.NewRepository[entities.Account](),
		PurchaseOrders: memory.NewRepository[entities.PurchaseOrder](),
	}
}
