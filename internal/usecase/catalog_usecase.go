package usecase

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/catalog_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var ErrInvalidContactRole = errors.New("contact kind must be customer or vendor")

// ICatalogUseCase exposes the list/search/create/edit/delete flow shared by
// the master screens (contacts, products, taxes, chart of accounts).
type ICatalogUseCase[T entities.Entity[T]] interface {
	List(ctx context.Context, term string) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, patch entities.Patch[T]) (T, error)
	Update(ctx context.Context, id string, patch entities.Patch[T]) (T, error)
	Delete(ctx context.Context, id string) error
}

type CatalogUseCase[T entities.Entity[T]] struct {
	repo     interfaces.IRepository[T]
	entity   string
	defaults func() T
	locks    recordLocks
}

func NewCatalogUseCase[T entities.Entity[T]](entity string, repo interfaces.IRepository[T], defaults func() T) *CatalogUseCase[T] {
	return &CatalogUseCase[T]{repo: repo, entity: entity, defaults: defaults}
}

func NewContactUseCase(repo interfaces.IContactRepository) *CatalogUseCase[entities.Contact] {
	return NewCatalogUseCase("contact", repo, entities.NewContactDraft)
}

func NewProductUseCase(repo interfaces.IProductRepository) *CatalogUseCase[entities.Product] {
	return NewCatalogUseCase("product", repo, entities.NewProductDraft)
}

func NewTaxUseCase(repo interfaces.ITaxRepository) *CatalogUseCase[entities.Tax] {
	return NewCatalogUseCase("tax", repo, entities.NewTaxDraft)
}

func NewAccountUseCase(repo interfaces.IAccountRepository) *CatalogUseCase[entities.Account] {
	return NewCatalogUseCase("account", repo, entities.NewAccountDraft)
}

func (u *CatalogUseCase[T]) log() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"component": "usecase", "entity": u.entity})
}

func (u *CatalogUseCase[T]) List(ctx context.Context, term string) ([]T, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, term), nil
}

func (u *CatalogUseCase[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrInvalidRecordID
	}
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if rec.Meta().ID == "" {
		return zero, ErrRecordNotFound
	}
	return rec, nil
}

func (u *CatalogUseCase[T]) Create(ctx context.Context, patch entities.Patch[T]) (T, error) {
	var zero T
	session := NewFormSession(u.repo)
	if err := session.OpenCreate(u.defaults()); err != nil {
		return zero, err
	}
	saved, err := session.Submit(ctx, patch.ApplyTo(session.Draft()))
	if err != nil {
		u.log().WithError(err).Info("create rejected")
		return zero, err
	}
	u.log().WithField("id", saved.Meta().ID).Info("created")
	return saved, nil
}

func (u *CatalogUseCase[T]) Update(ctx context.Context, id string, patch entities.Patch[T]) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	defer u.locks.lock(id)()

	session := NewFormSession(u.repo)
	if err := session.OpenEdit(ctx, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			u.log().WithField("id", id).Warn("update of missing record")
		}
		return zero, err
	}
	saved, err := session.Submit(ctx, patch.ApplyTo(session.Draft()))
	if err != nil {
		u.log().WithError(err).WithField("id", id).Info("update rejected")
		return zero, err
	}
	u.log().WithField("id", id).Info("updated")
	return saved, nil
}

// Delete removes the record. Deleting an unknown id is a logged no-op.
func (u *CatalogUseCase[T]) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		u.log().WithField("id", id).Warn("delete of missing record ignored")
		return nil
	}
	u.log().WithField("id", id).Info("deleted")
	return nil
}

// FilterContactsByRole narrows contacts to customers or vendors. Contacts of
// kind Both match either role; an empty role keeps everything.
func FilterContactsByRole(contacts []entities.Contact, role string) ([]entities.Contact, error) {
	var match func(entities.ContactKind) bool
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "":
		return contacts, nil
	case "customer":
		match = entities.ContactKind.IsCustomer
	case "vendor":
		match = entities.ContactKind.IsVendor
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidContactRole, role)
	}

	out := make([]entities.Contact, 0, len(contacts))
	for _, c := range contacts {
		if match(c.Kind) {
			out = append(out, c)
		}
	}
	return out, nil
}
