package types

import "testing"

func batchList(ids ...string) []CelllineBatch {
	batches := make([]CelllineBatch, len(ids))
	for i, id := range ids {
		batches[i].BatchID = id
	}
	return batches
}

func TestLatestBatchNumericSuffix(t *testing.T) {
	latest := LatestBatch(batchList("P3", "P12", "P1"))
	if latest == nil || latest.BatchID != "P12" {
		t.Fatalf("expected P12, got %+v", latest)
	}
}

func TestLatestBatchLexicographicFallback(t *testing.T) {
	latest := LatestBatch(batchList("batch-a", "batch-c", "batch-b"))
	if latest == nil || latest.BatchID != "batch-c" {
		t.Fatalf("expected batch-c, got %+v", latest)
	}
}

func TestLatestBatchMixed(t *testing.T) {
	// A numbered id beats a lower-numbered one even with different prefixes.
	latest := LatestBatch(batchList("b2", "a10"))
	if latest == nil || latest.BatchID != "a10" {
		t.Fatalf("expected a10, got %+v", latest)
	}
}

func TestLatestBatchEmpty(t *testing.T) {
	if latest := LatestBatch(nil); latest != nil {
		t.Fatalf("expected nil, got %+v", latest)
	}
}
