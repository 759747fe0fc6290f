package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record is the identity header shared by every stored entity.
type Record struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Record) Meta() Record { return r }

// Identifiable is satisfied by every entity embedding Record.
type Identifiable interface {
	Meta() Record
}

// Entity is the contract the generic stores, filters and form sessions work with.
// WithMeta returns a copy carrying the given header.
type Entity[T any] interface {
	Identifiable
	WithMeta(Record) T
	Validate() error
	SearchFields() []string
}

// Patch applies caller-supplied changes on top of a draft.
type Patch[T any] interface {
	ApplyTo(draft T) T
}

// Normalizer is implemented by entities carrying derived fields that must be
// recomputed before validation (purchase order totals).
type Normalizer[T any] interface {
	Normalize() T
}

// Cloner is implemented by entities holding reference-typed fields.
type Cloner[T any] interface {
	Clone() T
}

// ValidationError carries field-level validation failures.
type ValidationError struct {
	Fields map[string]string
}

var ErrValidation = errors.New("validation failed")

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// validator accumulates field errors; the first message per field wins.
type validator struct {
	fields map[string]string
}

func (v *validator) add(field, msg string) {
	if v.fields == nil {
		v.fields = map[string]string{}
	}
	if _, ok := v.fields[field]; !ok {
		v.fields[field] = msg
	}
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

func (v *validator) nonNegative(field string, d decimal.Decimal) {
	if d.IsNegative() {
		v.add(field, "must not be negative")
	}
}

func (v *validator) positive(field string, d decimal.Decimal) {
	if !d.IsPositive() {
		v.add(field, "must be greater than zero")
	}
}

func (v *validator) oneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.add(field, "must be one of "+strings.Join(allowed, ", "))
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
