package usecase

//go:generate mockgen -source=purchase_order_usecase.go -destination=../adapter/http/handlers/mocks/purchase_order_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const poNumberPrefix = "PO-"

// IPurchaseOrderUseCase exposes the purchase order screen: search, create and
// edit with derived totals, line item maintenance and the status lifecycle.
type IPurchaseOrderUseCase interface {
	List(ctx context.Context, term string) ([]entities.PurchaseOrderView, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrderView, error)
	Create(ctx context.Context, patch entities.Patch[entities.PurchaseOrder]) (entities.PurchaseOrderView, error)
	Update(ctx context.Context, id string, patch entities.Patch[entities.PurchaseOrder]) (entities.PurchaseOrderView, error)
	Delete(ctx context.Context, id string) error
	AddLineItem(ctx context.Context, orderID string, patch entities.Patch[entities.LineItem]) (entities.PurchaseOrderView, error)
	UpdateLineItem(ctx context.Context, orderID, itemID string, patch entities.Patch[entities.LineItem]) (entities.PurchaseOrderView, error)
	RemoveLineItem(ctx context.Context, orderID, itemID string) (entities.PurchaseOrderView, error)
	Send(ctx context.Context, id string) (entities.PurchaseOrderView, error)
	Approve(ctx context.Context, id string) (entities.PurchaseOrderView, error)
	Complete(ctx context.Context, id string) (entities.PurchaseOrderView, error)
	Cancel(ctx context.Context, id string) (entities.PurchaseOrderView, error)
}

type PurchaseOrderUseCase struct {
	repo     interfaces.IPurchaseOrderRepository
	contacts interfaces.IContactRepository
	products interfaces.IProductRepository
	now      func() time.Time
	locks    recordLocks
}

var _ IPurchaseOrderUseCase = (*PurchaseOrderUseCase)(nil)

func NewPurchaseOrderUseCase(repo interfaces.IPurchaseOrderRepository, contacts interfaces.IContactRepository, products interfaces.IProductRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		repo:     repo,
		contacts: contacts,
		products: products,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *PurchaseOrderUseCase) log() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"component": "usecase", "entity": "purchase_order"})
}

func (u *PurchaseOrderUseCase) List(ctx context.Context, term string) ([]entities.PurchaseOrderView, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views, err := u.join(ctx, orders...)
	if err != nil {
		return nil, err
	}
	return Filter(views, term), nil
}

func (u *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (entities.PurchaseOrderView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PurchaseOrderView{}, ErrInvalidRecordID
	}
	po, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}
	if po.ID == "" {
		return entities.PurchaseOrderView{}, ErrRecordNotFound
	}
	return u.joinOne(ctx, po)
}

// Create stores a new Draft order. Line items get fresh ids, totals are
// recomputed, and a PO number is assigned when the caller leaves it blank.
func (u *PurchaseOrderUseCase) Create(ctx context.Context, patch entities.Patch[entities.PurchaseOrder]) (entities.PurchaseOrderView, error) {
	session := NewFormSession(u.repo)
	if err := session.OpenCreate(entities.NewPurchaseOrderDraft(u.now())); err != nil {
		return entities.PurchaseOrderView{}, err
	}

	draft := patch.ApplyTo(session.Draft())
	draft.Status = entities.PurchaseOrderStatusDraft
	draft.Items = withItemIDs(draft.Items, nil)
	if strings.TrimSpace(draft.PONumber) == "" {
		number, err := u.nextPONumber(ctx)
		if err != nil {
			return entities.PurchaseOrderView{}, err
		}
		draft.PONumber = number
	}

	saved, err := session.Submit(ctx, draft)
	if err != nil {
		u.log().WithError(err).Info("create rejected")
		return entities.PurchaseOrderView{}, err
	}
	u.log().WithFields(logrus.Fields{"id": saved.ID, "po_number": saved.PONumber, "total": saved.Total.String()}).Info("created")
	return u.joinOne(ctx, saved)
}

// Update edits header fields and, when given, replaces the line items. Rows
// whose id matches no stored item get a fresh one. The status is only changed
// through the lifecycle actions.
func (u *PurchaseOrderUseCase) Update(ctx context.Context, id string, patch entities.Patch[entities.PurchaseOrder]) (entities.PurchaseOrderView, error) {
	return u.edit(ctx, id, "update", func(po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
		status, known := po.Status, itemIDs(po.Items)
		po = patch.ApplyTo(po)
		po.Status = status
		po.Items = withItemIDs(po.Items, known)
		return po, nil
	})
}

func (u *PurchaseOrderUseCase) Delete(ctx context.Context, id string) error {
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

func (u *PurchaseOrderUseCase) AddLineItem(ctx context.Context, orderID string, patch entities.Patch[entities.LineItem]) (entities.PurchaseOrderView, error) {
	return u.edit(ctx, orderID, "add-line-item", func(po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
		item := patch.ApplyTo(entities.LineItem{})
		item.ID = uuid.NewString()
		po.Items = append(po.Items, item)
		return po, nil
	})
}

func (u *PurchaseOrderUseCase) UpdateLineItem(ctx context.Context, orderID, itemID string, patch entities.Patch[entities.LineItem]) (entities.PurchaseOrderView, error) {
	return u.edit(ctx, orderID, "update-line-item", func(po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
		i := po.LineItemIndex(itemID)
		if i < 0 {
			return po, ErrRecordNotFound
		}
		item := patch.ApplyTo(po.Items[i])
		item.ID = itemID
		po.Items[i] = item
		return po, nil
	})
}

func (u *PurchaseOrderUseCase) RemoveLineItem(ctx context.Context, orderID, itemID string) (entities.PurchaseOrderView, error) {
	return u.edit(ctx, orderID, "remove-line-item", func(po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
		i := po.LineItemIndex(itemID)
		if i < 0 {
			return po, ErrRecordNotFound
		}
		po.Items = append(po.Items[:i], po.Items[i+1:]...)
		return po, nil
	})
}

func (u *PurchaseOrderUseCase) Send(ctx context.Context, id string) (entities.PurchaseOrderView, error) {
	return u.transition(ctx, id, entities.PurchaseOrderStatusSent)
}

func (u *PurchaseOrderUseCase) Approve(ctx context.Context, id string) (entities.PurchaseOrderView, error) {
	return u.transition(ctx, id, entities.PurchaseOrderStatusApproved)
}

func (u *PurchaseOrderUseCase) Complete(ctx context.Context, id string) (entities.PurchaseOrderView, error) {
	return u.transition(ctx, id, entities.PurchaseOrderStatusCompleted)
}

func (u *PurchaseOrderUseCase) Cancel(ctx context.Context, id string) (entities.PurchaseOrderView, error) {
	return u.transition(ctx, id, entities.PurchaseOrderStatusCancelled)
}

func (u *PurchaseOrderUseCase) transition(ctx context.Context, id string, target entities.PurchaseOrderStatus) (entities.PurchaseOrderView, error) {
	id = strings.TrimSpace(id)
	defer u.locks.lock(id)()

	session := NewFormSession(u.repo)
	if err := session.OpenEdit(ctx, id); err != nil {
		return entities.PurchaseOrderView{}, u.openErr(id, err)
	}
	draft, err := session.Draft().Transition(target)
	if err != nil {
		session.Cancel()
		u.log().WithError(err).WithField("id", id).Info("status change rejected")
		return entities.PurchaseOrderView{}, err
	}
	saved, err := session.Submit(ctx, draft)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}
	u.log().WithFields(logrus.Fields{"id": saved.ID, "status": saved.Status}).Info("status changed")
	return u.joinOne(ctx, saved)
}

// edit runs one mutation of a non-terminal order through a form session so
// totals are recomputed and the result validated before it is stored. Edits
// of the same order are serialized.
func (u *PurchaseOrderUseCase) edit(ctx context.Context, id, op string, mutate func(entities.PurchaseOrder) (entities.PurchaseOrder, error)) (entities.PurchaseOrderView, error) {
	id = strings.TrimSpace(id)
	defer u.locks.lock(id)()

	session := NewFormSession(u.repo)
	if err := session.OpenEdit(ctx, id); err != nil {
		return entities.PurchaseOrderView{}, u.openErr(id, err)
	}
	draft := session.Draft()
	if draft.Status.IsTerminal() {
		session.Cancel()
		return entities.PurchaseOrderView{}, fmt.Errorf("%w: status %s", entities.ErrOrderLocked, draft.Status)
	}
	draft, err := mutate(draft)
	if err != nil {
		session.Cancel()
		return entities.PurchaseOrderView{}, err
	}
	saved, err := session.Submit(ctx, draft)
	if err != nil {
		u.log().WithError(err).WithFields(logrus.Fields{"id": id, "op": op}).Info("edit rejected")
		return entities.PurchaseOrderView{}, err
	}
	u.log().WithFields(logrus.Fields{"id": saved.ID, "op": op, "total": saved.Total.String()}).Info("updated")
	return u.joinOne(ctx, saved)
}

func (u *PurchaseOrderUseCase) openErr(id string, err error) error {
	if errors.Is(err, ErrRecordNotFound) {
		u.log().WithField("id", id).Warn("purchase order not found")
	}
	return err
}

func (u *PurchaseOrderUseCase) nextPONumber(ctx context.Context) (string, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return "", err
	}
	highest := 0
	for _, po := range orders {
		n, err := strconv.Atoi(strings.TrimPrefix(po.PONumber, poNumberPrefix))
		if err == nil && strings.HasPrefix(po.PONumber, poNumberPrefix) && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", poNumberPrefix, highest+1), nil
}

func (u *PurchaseOrderUseCase) joinOne(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrderView, error) {
	views, err := u.join(ctx, po)
	if err != nil {
		return entities.PurchaseOrderView{}, err
	}
	return views[0], nil
}

// join resolves vendor and product names at read time.
func (u *PurchaseOrderUseCase) join(ctx context.Context, orders ...entities.PurchaseOrder) ([]entities.PurchaseOrderView, error) {
	contacts, err := u.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vendors: %w", err)
	}
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return JoinPurchaseOrders(orders, contacts, products), nil
}

// JoinPurchaseOrders attaches vendor and product names. Unknown references
// resolve to empty names.
func JoinPurchaseOrders(orders []entities.PurchaseOrder, contacts []entities.Contact, products []entities.Product) []entities.PurchaseOrderView {
	vendorNames := make(map[string]string, len(contacts))
	for _, c := range contacts {
		vendorNames[c.ID] = c.Name
	}
	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}

	views := make([]entities.PurchaseOrderView, 0, len(orders))
	for _, po := range orders {
		names := make(map[string]string, len(po.Items))
		for _, it := range po.Items {
			names[it.ProductID] = productNames[it.ProductID]
		}
		views = append(views, entities.PurchaseOrderView{
			Order:        po,
			VendorName:   vendorNames[po.VendorID],
			ProductNames: names,
		})
	}
	return views
}

func itemIDs(items []entities.LineItem) map[string]bool {
	ids := make(map[string]bool, len(items))
	for _, it := range items {
		ids[it.ID] = true
	}
	return ids
}

// withItemIDs keeps the ids found in known and issues a new id for every
// other row, so callers cannot choose or repeat item ids.
func withItemIDs(items []entities.LineItem, known map[string]bool) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == "" || !known[out[i].ID] {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}
