package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/stemlab/biobank-backend/internal/repos/testutil"
	"github.com/stemlab/biobank-backend/internal/types"
)

func TestResolverMoleculeDedup(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	res := NewResolver(testutil.Logger(t))

	// The two kind spellings are synonyms and must resolve to one row.
	first, err := res.Molecule(ctx, tx, "SOX2", "id_type_gene", "entrez_id", "6657")
	if err != nil {
		t.Fatalf("resolve molecule: %v", err)
	}
	second, err := res.Molecule(ctx, tx, "SOX2", "gene", "entrez", "6657")
	if err != nil {
		t.Fatalf("resolve molecule again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected one molecule, got %s and %s", first.ID, second.ID)
	}

	var moleculeCount int64
	if err := tx.Model(&types.Molecule{}).Count(&moleculeCount).Error; err != nil {
		t.Fatalf("count molecules: %v", err)
	}
	if moleculeCount != 1 {
		t.Fatalf("expected 1 molecule, got %d", moleculeCount)
	}

	var refCount int64
	if err := tx.Model(&types.MoleculeReference{}).Count(&refCount).Error; err != nil {
		t.Fatalf("count references: %v", err)
	}
	if refCount != 1 {
		t.Fatalf("expected 1 molecule reference, got %d", refCount)
	}
}

func TestResolverMoleculeUpdatesReference(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	res := NewResolver(testutil.Logger(t))

	if _, err := res.Molecule(ctx, tx, "OCT4", "gene", "ensembl", "ENSG00000204531"); err != nil {
		t.Fatalf("resolve molecule: %v", err)
	}
	molecule, err := res.Molecule(ctx, tx, "OCT4", "gene", "ensembl", "ENSG00000999999")
	if err != nil {
		t.Fatalf("resolve molecule again: %v", err)
	}

	var ref types.MoleculeReference
	if err := tx.Where("molecule_id = ?", molecule.ID).First(&ref).Error; err != nil {
		t.Fatalf("load reference: %v", err)
	}
	if ref.CatalogID != "ENSG00000999999" {
		t.Fatalf("expected updated catalog id, got %q", ref.CatalogID)
	}
}

func TestResolverMoleculeInvalid(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	res := NewResolver(testutil.Logger(t))

	if _, err := res.Molecule(ctx, tx, "", "gene", "", ""); !errors.Is(err, ErrInvalidMolecule) {
		t.Fatalf("expected ErrInvalidMolecule for empty name, got %v", err)
	}
	if _, err := res.Molecule(ctx, tx, "SOX2", "rna", "", ""); !errors.Is(err, ErrInvalidMolecule) {
		t.Fatalf("expected ErrInvalidMolecule for unknown kind, got %v", err)
	}
	if _, err := res.Molecule(ctx, tx, "SOX2", "gene", "refseq", "x"); !errors.Is(err, ErrInvalidMolecule) {
		t.Fatalf("expected ErrInvalidMolecule for unknown catalog, got %v", err)
	}
}

func TestDecodeMolecule(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	res := NewResolver(testutil.Logger(t))

	molecule, err := res.DecodeMolecule(ctx, tx, "6657###SOX2###entrez_id###id_type_gene")
	if err != nil {
		t.Fatalf("decode molecule: %v", err)
	}
	if molecule.Name != "SOX2" || molecule.Kind != types.MoleculeKindGene {
		t.Fatalf("unexpected molecule %q/%q", molecule.Name, molecule.Kind)
	}

	if _, err := res.DecodeMolecule(ctx, tx, "just a name"); !errors.Is(err, ErrInvalidMolecule) {
		t.Fatalf("expected ErrInvalidMolecule, got %v", err)
	}
}

func TestDecodeMarkerResult(t *testing.T) {
	name, result, err := DecodeMarkerResult("SSEA-4###+")
	if err != nil || name != "SSEA-4" || result != "+" {
		t.Fatalf("short encoding: got %q/%q, err %v", name, result, err)
	}

	name, result, err = DecodeMarkerResult("6657###+###SOX2###entrez_id###id_type_gene")
	if err != nil || name != "SOX2" || result != "+" {
		t.Fatalf("long encoding: got %q/%q, err %v", name, result, err)
	}

	if _, _, err := DecodeMarkerResult("a###b###c"); !errors.Is(err, ErrInvalidMolecule) {
		t.Fatalf("expected ErrInvalidMolecule, got %v", err)
	}
}

func TestResolverCellTypeRefreshesPurl(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	res := NewResolver(testutil.Logger(t))

	first, err := res.CellType(ctx, tx, "fibroblast", "http://purl.obolibrary.org/obo/CL_0000057")
	if err != nil {
		t.Fatalf("resolve cell type: %v", err)
	}
	second, err := res.CellType(ctx, tx, "fibroblast", "http://purl.obolibrary.org/obo/CL_9999999")
	if err != nil {
		t.Fatalf("resolve cell type again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatal("expected same cell type row")
	}
	if second.Purl != "http://purl.obolibrary.org/obo/CL_9999999" {
		t.Fatalf("expected refreshed purl, got %q", second.Purl)
	}
}

func TestResolverDisease(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	res := NewResolver(testutil.Logger(t))

	disease, err := res.Disease(ctx, tx, "http://www.orpha.net/ORDO/Orphanet_98896", "Duchenne muscular dystrophy", []string{"DMD", "Duchenne"})
	if err != nil {
		t.Fatalf("resolve disease: %v", err)
	}
	if disease.Synonyms != "DMD, Duchenne" {
		t.Fatalf("expected joined synonyms, got %q", disease.Synonyms)
	}

	missing, err := res.Disease(ctx, tx, "", "no purl", nil)
	if err != nil {
		t.Fatalf("resolve disease without purl: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil disease for missing purl")
	}
}

func TestResolverAgeRangeLookupOnly(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	res := NewResolver(testutil.Logger(t))

	if age, err := res.AgeRange(ctx, tx, "40-44"); err != nil || age != nil {
		t.Fatalf("expected nil for unseeded range, got %v, err %v", age, err)
	}

	seeded := types.AgeRange{ID: uuid.New(), Name: "40-44"}
	if err := tx.Create(&seeded).Error; err != nil {
		t.Fatalf("seed age range: %v", err)
	}

	age, err := res.AgeRange(ctx, tx, "40-44")
	if err != nil {
		t.Fatalf("resolve age range: %v", err)
	}
	if age == nil || age.ID != seeded.ID {
		t.Fatal("expected the seeded age range")
	}

	if age, err := res.AgeRange(ctx, tx, "---"); err != nil || age != nil {
		t.Fatalf("expected nil for placeholder range, got %v, err %v", age, err)
	}
}
