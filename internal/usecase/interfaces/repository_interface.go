package interfaces

import (
	"context"

	"shiv_accounts/internal/domain/entities"
)

//go:generate mockgen -source=repository_interface.go -destination=mocks/repository_mock.go -package=mock_interfaces

// IRepository is the entity store behind every master and transaction screen.
//
// Conventions shared by the memory and DynamoDB implementations:
//   - List returns newest records first; callers get copies.
//   - Update replaces the record by id and returns the zero value when the id is absent.
//   - GetByID returns the zero value when the id is absent.
//   - Delete reports whether a record was removed.
type IRepository[T entities.Identifiable] interface {
	Create(ctx context.Context, e T) (T, error)
	Update(ctx context.Context, e T) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
}

type (
	IContactRepository       = IRepository[entities.Contact]
	IProductRepository       = IRepository[entities.Product]
	ITaxRepository           = IRepository[entities.Tax]
	IAccountRepository       = IRepository[entities.Account]
	IPurchaseOrderRepository = IRepository[entities.PurchaseOrder]
)
