package usecase

import (
	"context"
	"errors"
	"time"

	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrInvalidRecordID   = errors.New("invalid record id")
	ErrFormSessionOpen   = errors.New("form session already open")
	ErrFormSessionClosed = errors.New("form session is closed")
)

type FormMode int

const (
	FormModeNone FormMode = iota
	FormModeCreate
	FormModeEdit
)

func (m FormMode) String() string {
	switch m {
	case FormModeCreate:
		return "create"
	case FormModeEdit:
		return "edit"
	default:
		return "closed"
	}
}

// FormSession is one in-progress create or edit of a record.
//
//	Closed -> Open(Create, defaults) | Open(Edit(id), copy of record)
//	Open   -> Closed on successful Submit or Cancel
//
// A failed validation keeps the session open. A session is not safe for
// concurrent use; each request owns its own.
type FormSession[T entities.Entity[T]] struct {
	repo   interfaces.IRepository[T]
	mode   FormMode
	editID string
	draft  T
	orig   entities.Record
	now    func() time.Time
}

func NewFormSession[T entities.Entity[T]](repo interfaces.IRepository[T]) *FormSession[T] {
	return &FormSession[T]{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *FormSession[T]) Mode() FormMode { return s.mode }

func (s *FormSession[T]) IsOpen() bool { return s.mode != FormModeNone }

// EditID is the id of the record being edited, empty in create mode.
func (s *FormSession[T]) EditID() string { return s.editID }

// Draft returns the current buffer: defaults in create mode, a copy of the
// stored record in edit mode.
func (s *FormSession[T]) Draft() T { return s.draft }

func (s *FormSession[T]) OpenCreate(defaults T) error {
	if s.IsOpen() {
		return ErrFormSessionOpen
	}
	s.mode = FormModeCreate
	s.draft = defaults
	return nil
}

func (s *FormSession[T]) OpenEdit(ctx context.Context, id string) error {
	if s.IsOpen() {
		return ErrFormSessionOpen
	}
	if id == "" {
		return ErrInvalidRecordID
	}
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.Meta().ID == "" {
		return ErrRecordNotFound
	}
	if c, ok := any(rec).(entities.Cloner[T]); ok {
		rec = c.Clone()
	}
	s.mode = FormModeEdit
	s.editID = id
	s.orig = rec.Meta()
	s.draft = rec
	return nil
}

// Submit validates the draft and writes it to the store. On success the
// session closes and the stored record is returned. A *entities.ValidationError
// leaves the session open holding the rejected draft.
func (s *FormSession[T]) Submit(ctx context.Context, draft T) (T, error) {
	var zero T
	if !s.IsOpen() {
		return zero, ErrFormSessionClosed
	}

	if n, ok := any(draft).(entities.Normalizer[T]); ok {
		draft = n.Normalize()
	}
	now := s.now()
	switch s.mode {
	case FormModeCreate:
		draft = draft.WithMeta(entities.Record{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now})
	case FormModeEdit:
		draft = draft.WithMeta(entities.Record{ID: s.orig.ID, CreatedAt: s.orig.CreatedAt, UpdatedAt: now})
	}
	s.draft = draft

	if err := draft.Validate(); err != nil {
		return zero, err
	}

	var (
		saved T
		err   error
	)
	if s.mode == FormModeCreate {
		saved, err = s.repo.Create(ctx, draft)
	} else {
		saved, err = s.repo.Update(ctx, draft)
		if err == nil && saved.Meta().ID == "" {
			logrus.WithFields(logrus.Fields{"component": "form", "id": s.editID}).
				Warn("record vanished while being edited")
			s.Cancel()
			return zero, ErrRecordNotFound
		}
	}
	if err != nil {
		return zero, err
	}
	s.Cancel()
	return saved, nil
}

// Cancel discards the draft without touching the store.
func (s *FormSession[T]) Cancel() {
	var zero T
	s.mode = FormModeNone
	s.editID = ""
	s.orig = entities.Record{}
	s.draft = zero
}
