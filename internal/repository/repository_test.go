package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/lib/pq"
)

type result int64

func (r result) LastInsertId() (int64, error) { return 0, nil }
func (r result) RowsAffected() (int64, error) { return int64(r), nil }

func TestIsUniqueViolation(t *testing.T) {
	dup := fmt.Errorf("insert user: %w", &pq.Error{Code: "23505"})
	if !isUniqueViolation(dup) {
		t.Fatal("wrapped 23505 not detected")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("foreign key violation reported as unique")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Fatal("plain error reported as unique")
	}
}

func TestNotFound(t *testing.T) {
	if err := notFound("plan", sql.ErrNoRows); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := notFound("plan", errors.New("timeout")); errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, should not be ErrNotFound", err)
	}
}

func TestCheckAffected(t *testing.T) {
	if err := checkAffected(result(0), "payment"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := checkAffected(result(1), "payment"); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}

func TestParentPaymentDeleteKeepsOccurrences(t *testing.T) {
	re := regexp.MustCompile(`parent_id\s+TEXT REFERENCES finance\.payments\(id\) ON DELETE (\w+(?: \w+)?)`)
	m := re.FindStringSubmatch(schemaSQL)
	if m == nil {
		t.Fatal("parent_id foreign key not found in schema")
	}
	if m[1] != "SET NULL" {
		t.Fatalf("parent_id ON DELETE %s, want SET NULL", m[1])
	}
}

func TestSetCustomDates(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	raw, err := models.EncodeCustomDates(dates)
	if err != nil {
		t.Fatalf("EncodeCustomDates: %v", err)
	}

	p := models.Payment{ID: "p1"}
	if err := setCustomDates(&p, sql.NullString{String: raw, Valid: true}); err != nil {
		t.Fatalf("setCustomDates: %v", err)
	}
	if len(p.CustomDates) != 2 || !p.CustomDates[1].Equal(dates[1]) {
		t.Fatalf("CustomDates = %v, want %v", p.CustomDates, dates)
	}

	p = models.Payment{ID: "p2"}
	if err := setCustomDates(&p, sql.NullString{}); err != nil || p.CustomDates != nil {
		t.Fatalf("NULL column: CustomDates = %v, err = %v", p.CustomDates, err)
	}
	if err := setCustomDates(&p, sql.NullString{String: "not json", Valid: true}); err == nil {
		t.Fatal("expected error for corrupt custom dates")
	}
}
