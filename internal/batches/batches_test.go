package batches

import (
	"context"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/repos/testutil"
	"github.com/stemlab/biobank-backend/internal/types"
)

const exportHeader = "vial_biosamples_id\tbox\tposition\tcellline_biosamples_id\tcellline_name\tpassage\tdate\toperator\tbatch_biosamples_id\n"

func newTestImporter(t *testing.T, database *gorm.DB) *Importer {
	t.Helper()
	log := testutil.Logger(t)
	return NewImporter(database, repos.NewCelllineRepo(database, log), repos.NewBatchRepo(database, log), log)
}

func TestRunImportsBatchesAndAliquots(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	testutil.SeedCellline(t, ctx, database, "SAMEA0001", "CORDi001-A")
	imp := newTestImporter(t, database)

	export := exportHeader +
		"SAMEV0001\tB1\tA1\tSAMEA0001\tCORDi001-A\tP12\t2016-05-01\tjd\tSAMEB0001\n" +
		"SAMEV0002\tB1\tA2\tSAMEA0001\tCORDi001-A\tP12\t2016-05-01\tjd\tSAMEB0001\n"

	if err := imp.Run(ctx, strings.NewReader(export)); err != nil {
		t.Fatalf("run: %v", err)
	}

	var batch types.CelllineBatch
	if err := database.Where("biosamples_id = ?", "SAMEB0001").First(&batch).Error; err != nil {
		t.Fatalf("load batch: %v", err)
	}
	if batch.BatchID != "SAMEB0001" {
		t.Fatalf("unexpected batch id %q", batch.BatchID)
	}

	aliquots, err := repos.ListBy[types.CelllineAliquot](ctx, database, map[string]interface{}{
		"batch_id": batch.ID,
	}, "biosamples_id")
	if err != nil {
		t.Fatalf("list aliquots: %v", err)
	}
	if len(aliquots) != 2 {
		t.Fatalf("expected 2 aliquots, got %d", len(aliquots))
	}
	if aliquots[0].BiosamplesID != "SAMEV0001" || aliquots[1].BiosamplesID != "SAMEV0002" {
		t.Fatalf("unexpected aliquots %q and %q", aliquots[0].BiosamplesID, aliquots[1].BiosamplesID)
	}
}

func TestRunSkipsUnknownCelllines(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	imp := newTestImporter(t, database)

	export := exportHeader +
		"SAMEV0001\tB1\tA1\tSAMEA9999\tUNKNOWN\tP3\t2016-05-01\tjd\tSAMEB0001\n"

	if err := imp.Run(ctx, strings.NewReader(export)); err != nil {
		t.Fatalf("run: %v", err)
	}

	var batchCount int64
	if err := database.Model(&types.CelllineBatch{}).Count(&batchCount).Error; err != nil {
		t.Fatalf("count batches: %v", err)
	}
	if batchCount != 0 {
		t.Fatalf("expected no batches for unknown cell lines, got %d", batchCount)
	}
}

func TestRunIsAdditive(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	testutil.SeedCellline(t, ctx, database, "SAMEA0001", "CORDi001-A")
	imp := newTestImporter(t, database)

	export := exportHeader +
		"SAMEV0001\tB1\tA1\tSAMEA0001\tCORDi001-A\tP12\t2016-05-01\tjd\tSAMEB0001\n"

	if err := imp.Run(ctx, strings.NewReader(export)); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := imp.Run(ctx, strings.NewReader(export)); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var batches, aliquots int64
	if err := database.Model(&types.CelllineBatch{}).Count(&batches).Error; err != nil {
		t.Fatalf("count batches: %v", err)
	}
	if err := database.Model(&types.CelllineAliquot{}).Count(&aliquots).Error; err != nil {
		t.Fatalf("count aliquots: %v", err)
	}
	if batches != 1 || aliquots != 1 {
		t.Fatalf("expected 1 batch and 1 aliquot, got %d and %d", batches, aliquots)
	}
}

func TestRunToleratesShortRows(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	testutil.SeedCellline(t, ctx, database, "SAMEA0001", "CORDi001-A")
	imp := newTestImporter(t, database)

	export := exportHeader +
		"SAMEV0001\tB1\n" +
		"SAMEV0002\tB1\tA2\tSAMEA0001\tCORDi001-A\tP12\t2016-05-01\tjd\tSAMEB0001\n"

	if err := imp.Run(ctx, strings.NewReader(export)); err != nil {
		t.Fatalf("run: %v", err)
	}

	var aliquots int64
	if err := database.Model(&types.CelllineAliquot{}).Count(&aliquots).Error; err != nil {
		t.Fatalf("count aliquots: %v", err)
	}
	if aliquots != 1 {
		t.Fatalf("expected the full row to import, got %d aliquots", aliquots)
	}
}

func TestRunEmptyFile(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	imp := newTestImporter(t, database)

	if err := imp.Run(ctx, strings.NewReader("")); err != nil {
		t.Fatalf("run: %v", err)
	}
}
