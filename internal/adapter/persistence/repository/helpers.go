package repository

import (
	"fmt"
	"time"

	"shiv_accounts/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode %s: %w", field, err)
	}
	return t, nil
}

func parseRecord(id, createdAt, updatedAt string) (entities.Record, error) {
	created, err := parseTime("created_at", createdAt)
	if err != nil {
		return entities.Record{}, err
	}
	updated, err := parseTime("updated_at", updatedAt)
	if err != nil {
		return entities.Record{}, err
	}
	return entities.Record{ID: id, CreatedAt: created, UpdatedAt: updated}, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

// Amounts are stored as strings so the exact decimal representation survives
// the round trip.
func formatDecimal(d decimal.Decimal) string {
	return d.String()
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode %s: %w", field, err)
	}
	return d, nil
}
