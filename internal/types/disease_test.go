package types

import "testing"

func diseaseRecord(purl string, primary bool) DiseaseRecord {
	return CelllineDisease{
		Disease: &Disease{Xpurl: purl},
		Primary: primary,
	}
}

func TestPrimaryDiseaseFlaggedWins(t *testing.T) {
	records := []DiseaseRecord{
		diseaseRecord("http://www.orpha.net/ORDO/Orphanet_98896", false),
		diseaseRecord("http://www.orpha.net/ORDO/Orphanet_166", true),
	}
	got := PrimaryDisease(records)
	if got == nil || got.DiseaseRef().Xpurl != "http://www.orpha.net/ORDO/Orphanet_166" {
		t.Fatalf("expected the flagged record, got %+v", got)
	}
}

func TestPrimaryDiseaseSkipsNormalTerm(t *testing.T) {
	records := []DiseaseRecord{
		diseaseRecord(NormalPurl, false),
		diseaseRecord("http://www.orpha.net/ORDO/Orphanet_98896", false),
	}
	got := PrimaryDisease(records)
	if got == nil || got.DiseaseRef().Xpurl == NormalPurl {
		t.Fatalf("expected the non-normal record, got %+v", got)
	}
}

func TestPrimaryDiseaseFallsBackToFirst(t *testing.T) {
	records := []DiseaseRecord{
		diseaseRecord(NormalPurl, false),
	}
	got := PrimaryDisease(records)
	if got == nil || got.DiseaseRef().Xpurl != NormalPurl {
		t.Fatalf("expected the only record, got %+v", got)
	}
}

func TestPrimaryDiseaseEmpty(t *testing.T) {
	if got := PrimaryDisease(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
