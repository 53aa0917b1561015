package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/stemlab/biobank-backend/internal/repos/testutil"
	"github.com/stemlab/biobank-backend/internal/types"
)

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))

	cond := map[string]interface{}{"name": "lentivirus"}
	build := func() *types.Virus {
		return &types.Virus{ID: uuid.New(), Name: "lentivirus"}
	}

	first, created, err := GetOrCreate(ctx, tx, cond, build)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if !created {
		t.Fatal("expected first call to create")
	}

	second, created, err := GetOrCreate(ctx, tx, cond, build)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if created {
		t.Fatal("expected second call to reuse")
	}
	if second.ID != first.ID {
		t.Fatalf("expected the same row, got %s and %s", first.ID, second.ID)
	}
}

func TestUpdateOrCreateDetectsChanges(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))

	cond := map[string]interface{}{"xpurl": "http://www.orpha.net/ORDO/Orphanet_98896"}
	build := func() *types.Disease {
		return &types.Disease{ID: uuid.New(), Xpurl: "http://www.orpha.net/ORDO/Orphanet_98896"}
	}

	_, created, changed, err := UpdateOrCreate(ctx, tx, cond, build, func(d *types.Disease) {
		d.Name = "Duchenne muscular dystrophy"
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created || !changed {
		t.Fatalf("expected created and changed, got %v and %v", created, changed)
	}

	_, created, changed, err = UpdateOrCreate(ctx, tx, cond, build, func(d *types.Disease) {
		d.Name = "Duchenne muscular dystrophy"
	})
	if err != nil {
		t.Fatalf("identical update: %v", err)
	}
	if created || changed {
		t.Fatalf("expected identical assign to be a no-op, got %v and %v", created, changed)
	}

	rec, created, changed, err := UpdateOrCreate(ctx, tx, cond, build, func(d *types.Disease) {
		d.Name = "DMD"
		d.Synonyms = "Duchenne muscular dystrophy"
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if created || !changed {
		t.Fatalf("expected update in place, got created=%v changed=%v", created, changed)
	}
	if rec.Name != "DMD" {
		t.Fatalf("unexpected name %q", rec.Name)
	}
}

func TestGetByReturnsNilWhenAbsent(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))

	rec, err := GetBy[types.Disease](ctx, tx, map[string]interface{}{"xpurl": "missing"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil, got %+v", rec)
	}
}
