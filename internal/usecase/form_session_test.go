package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"shiv_accounts/internal/domain/entities"
	mock_interfaces "shiv_accounts/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFormSession_OpenCreate(t *testing.T) {
	s := NewFormSession[entities.Contact](nil)
	if s.IsOpen() || s.Mode() != FormModeNone {
		t.Fatalf("expected closed session")
	}
	if err := s.OpenCreate(entities.NewContactDraft()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Mode() != FormModeCreate || s.Draft().Kind != entities.ContactKindCustomer {
		t.Fatalf("unexpected session state: mode=%s draft=%+v", s.Mode(), s.Draft())
	}
	if err := s.OpenCreate(entities.NewContactDraft()); !errors.Is(err, ErrFormSessionOpen) {
		t.Fatalf("expected ErrFormSessionOpen, got %v", err)
	}
	s.Cancel()
	if s.IsOpen() {
		t.Fatalf("expected closed session after cancel")
	}
}

func TestFormSession_SubmitCreate(t *testing.T) {
	t.Run("closed session", func(t *testing.T) {
		s := NewFormSession[entities.Contact](nil)
		_, err := s.Submit(context.Background(), entities.Contact{})
		if !errors.Is(err, ErrFormSessionClosed) {
			t.Fatalf("expected ErrFormSessionClosed, got %v", err)
		}
	})

	t.Run("validation failure keeps session open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Contact](ctrl)
		s := NewFormSession[entities.Contact](repo)
		_ = s.OpenCreate(entities.NewContactDraft())

		_, err := s.Submit(context.Background(), entities.Contact{Kind: entities.ContactKindCustomer})
		var verr *entities.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if _, ok := verr.Fields["name"]; !ok {
			t.Fatalf("expected name field error, got %v", verr.Fields)
		}
		if !s.IsOpen() || s.Mode() != FormModeCreate {
			t.Fatalf("expected session to stay open")
		}
	})

	t.Run("success stamps identity and closes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Contact](ctrl)
		s := NewFormSession[entities.Contact](repo)
		s.now = func() time.Time { return fixedNow }
		_ = s.OpenCreate(entities.NewContactDraft())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contact{})).DoAndReturn(
			func(_ context.Context, c entities.Contact) (entities.Contact, error) {
				if c.ID == "" || c.Name != "Test Co" {
					t.Fatalf("unexpected contact: %+v", c)
				}
				if !c.CreatedAt.Equal(fixedNow) || !c.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected timestamps, got %+v", c.Record)
				}
				return c, nil
			},
		)

		saved, err := s.Submit(context.Background(), testCoPatch().ApplyTo(s.Draft()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID == "" || s.IsOpen() {
			t.Fatalf("expected saved record and closed session")
		}
	})

	t.Run("store error keeps session open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Contact](ctrl)
		s := NewFormSession[entities.Contact](repo)
		_ = s.OpenCreate(entities.NewContactDraft())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contact{}, errors.New("db"))

		_, err := s.Submit(context.Background(), testCoPatch().ApplyTo(s.Draft()))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if !s.IsOpen() {
			t.Fatalf("expected session to stay open")
		}
	})
}

func TestFormSession_Edit(t *testing.T) {
	stored := testCoPatch().ApplyTo(entities.Contact{
		Record: entities.Record{ID: "c-1", CreatedAt: fixedNow.Add(-time.Hour), UpdatedAt: fixedNow.Add(-time.Hour)},
		Kind:   entities.ContactKindCustomer,
	})

	t.Run("invalid id", func(t *testing.T) {
		s := NewFormSession[entities.Contact](nil)
		if err := s.OpenEdit(context.Background(), ""); !errors.Is(err, ErrInvalidRecordID) {
			t.Fatalf("expected ErrInvalidRecordID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Contact](ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Contact{}, nil)

		s := NewFormSession[entities.Contact](repo)
		if err := s.OpenEdit(context.Background(), "missing"); !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
		if s.IsOpen() {
			t.Fatalf("expected closed session")
		}
	})

	t.Run("submit keeps id and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Contact](ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contact) (entities.Contact, error) {
				if c.ID != "c-1" || !c.CreatedAt.Equal(stored.CreatedAt) || !c.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected record header: %+v", c.Record)
				}
				if c.City != "Pune" {
					t.Fatalf("expected edited city, got %q", c.City)
				}
				return c, nil
			},
		)

		s := NewFormSession[entities.Contact](repo)
		s.now = func() time.Time { return fixedNow }
		if err := s.OpenEdit(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Mode() != FormModeEdit || s.EditID() != "c-1" {
			t.Fatalf("unexpected mode %s id %q", s.Mode(), s.EditID())
		}

		draft := s.Draft()
		draft.City = "Pune"
		draft.ID = "tampered"
		if _, err := s.Submit(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.IsOpen() {
			t.Fatalf("expected closed session")
		}
	})

	t.Run("record removed during edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Contact](ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Contact{}, nil)

		s := NewFormSession[entities.Contact](repo)
		_ = s.OpenEdit(context.Background(), "c-1")
		if _, err := s.Submit(context.Background(), s.Draft()); !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
		if s.IsOpen() {
			t.Fatalf("expected closed session")
		}
	})

	t.Run("draft is a copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		po := entities.PurchaseOrder{
			Record: entities.Record{ID: "po-1"},
			Items:  []entities.LineItem{{ID: "li-1", ProductID: "p-1", Quantity: d("1")}},
		}
		repo := mock_interfaces.NewMockIRepository[entities.PurchaseOrder](ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "po-1").Return(po, nil)

		s := NewFormSession[entities.PurchaseOrder](repo)
		_ = s.OpenEdit(context.Background(), "po-1")
		s.Draft().Items[0].ProductID = "changed"
		if po.Items[0].ProductID != "p-1" {
			t.Fatalf("draft shares line items with the stored record")
		}
		s.Cancel()
	})
}
