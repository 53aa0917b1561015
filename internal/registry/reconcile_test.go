package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
)

type supplementRow struct {
	Name   string
	Amount string
}

func runSupplementReconciler(t *testing.T, old []supplementRow, items []string) (map[string]string, []string, bool) {
	t.Helper()

	rows := map[string]string{}
	for _, o := range old {
		rows[o.Name] = o.Amount
	}
	var deleted []string

	r := &Reconciler[string, supplementRow, string]{
		Label: "supplement",
		Log:   logger.NewNop(),
		Old:   old,
		Items: items,
		Key:   func(c *supplementRow) string { return c.Name },
		Parse: func(item string) (*supplementRow, bool, error) {
			parts := strings.Split(item, "###")
			if len(parts) != 2 {
				return nil, false, errors.New("wrong field count")
			}
			if parts[0] == "" {
				return nil, false, nil
			}
			rec := supplementRow{Name: parts[0], Amount: parts[1]}
			prev, existed := rows[rec.Name]
			rows[rec.Name] = rec.Amount
			return &rec, !existed || prev != rec.Amount, nil
		},
		Delete: func(c *supplementRow) error {
			delete(rows, c.Name)
			deleted = append(deleted, c.Name)
			return nil
		},
	}

	dirty, err := r.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return rows, deleted, dirty
}

func TestReconcilerConvergesToPayload(t *testing.T) {
	old := []supplementRow{{"a", "1"}, {"b", "2"}, {"c", "3"}}
	rows, deleted, dirty := runSupplementReconciler(t, old, []string{"a###1", "b###9", "d###4"})

	if !dirty {
		t.Fatal("expected membership change to report dirty")
	}
	if len(rows) != 3 || rows["a"] != "1" || rows["b"] != "9" || rows["d"] != "4" {
		t.Fatalf("unexpected surviving rows %v", rows)
	}
	if len(deleted) != 1 || deleted[0] != "c" {
		t.Fatalf("expected only c deleted, got %v", deleted)
	}
}

func TestReconcilerUnchangedPayloadIsClean(t *testing.T) {
	old := []supplementRow{{"a", "1"}, {"b", "2"}}
	_, deleted, dirty := runSupplementReconciler(t, old, []string{"a###1", "b###2"})

	if dirty {
		t.Fatal("expected identical payload to report clean")
	}
	if len(deleted) != 0 {
		t.Fatalf("expected no deletions, got %v", deleted)
	}
}

func TestReconcilerSkipsBadItemsWithoutDeletingSiblings(t *testing.T) {
	old := []supplementRow{{"a", "1"}}
	rows, deleted, _ := runSupplementReconciler(t, old, []string{"a###1", "malformed", "###5"})

	if _, ok := rows["a"]; !ok {
		t.Fatal("expected the valid row to survive")
	}
	if len(deleted) != 0 {
		t.Fatalf("bad items must not trigger deletions, got %v", deleted)
	}
}

func TestReconcilerEmptyPayloadDeletesAll(t *testing.T) {
	old := []supplementRow{{"a", "1"}, {"b", "2"}}
	rows, deleted, dirty := runSupplementReconciler(t, old, nil)

	if !dirty || len(rows) != 0 || len(deleted) != 2 {
		t.Fatalf("expected full deletion, rows=%v deleted=%v dirty=%v", rows, deleted, dirty)
	}
}
