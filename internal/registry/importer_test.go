package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos/testutil"
	"github.com/stemlab/biobank-backend/internal/types"
)

type fakeSource struct {
	ids     []string
	listErr error
	records map[string]map[string]interface{}
	files   map[string]string
}

func (f *fakeSource) ListIDs(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.ids, nil
}

func (f *fakeSource) Record(ctx context.Context, id string) (map[string]interface{}, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecord, id)
	}
	return record, nil
}

func (f *fakeSource) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	content, ok := f.files[url]
	if !ok {
		return nil, fmt.Errorf("no such file %q", url)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

type memStore struct {
	objects map[string][]byte
	deletes int
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (m *memStore) Save(ctx context.Context, key string, file io.Reader) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return err
	}
	m.objects[key] = buf.Bytes()
	return nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	delete(m.objects, key)
	m.deletes++
	return nil
}

func (m *memStore) URL(key string) string { return "mem://" + key }

func testRecord() map[string]interface{} {
	return map[string]interface{}{
		"biosamples_id":  "SAMEA0001",
		"id":             "CORDi001-A",
		"name":           "CORDi001-A",
		"alternate_name": []interface{}{"WTSIi001"},
		"donor": map[string]interface{}{
			"biosamples_id": "SAMED0001",
			"gender":        "male",
			"internal_ids":  []interface{}{"D-001"},
			"diseases": []interface{}{
				map[string]interface{}{
					"purl":      "http://www.orpha.net/ORDO/Orphanet_98896",
					"purl_name": "Duchenne muscular dystrophy",
					"primary":   "1",
				},
			},
		},
		"donor_age":          "40-44",
		"derivation_country": "United Kingdom",
		"providers": []interface{}{
			map[string]interface{}{"name": "WTSI", "role": "Generator"},
			map[string]interface{}{"name": "ECACC", "role": "Owner"},
			map[string]interface{}{"name": "EBiSC", "role": "Distributor"},
		},
		"diseases": []interface{}{
			map[string]interface{}{
				"purl":      "http://www.orpha.net/ORDO/Orphanet_98896",
				"purl_name": "Duchenne muscular dystrophy",
				"primary":   "1",
			},
		},
		"hips_consent_obtained_from_donor_of_tissue_flag": "1",
		"hips_no_pressure_stat_flag":                      "0",
		"hips_approval_flag":                              "1",
		"hips_approval_auth_name":                         "NRES Committee",

		"primary_celltype_name":   "fibroblast",
		"primary_celltype_ont_id": "http://purl.obolibrary.org/obo/CL_0000057",
		"collection_date":         "2015-01-01",
		"derivation_gmp_ips_flag": "1",

		"surface_coating": "vitronectin",
		"passage_method":  "Enzyme-free cell dissociation",
		"o2_concentration": "21",
		"co2_concentration": "5",
		"rock_inhibitor_used_at_passage_flag": "1",
		"culture_conditions_medium_culture_medium": "E8",
		"culture_conditions_medium_culture_medium_supplements": []interface{}{
			"Rock inhibitor###10###uM",
		},

		"karyotyping_flag":      "1",
		"karyotyping_karyotype": "46XY",
		"karyotyping_method":    "KaryoLite BoBs",

		"hla_flag":     "1",
		"hla_i_a_all1": "A*01:01",
		"hla_i_a_all2": "A*02:01",

		"fingerprinting_flag": "1",
		"fingerprinting": []interface{}{
			"D5S818###11###12",
		},

		"certificate_of_analysis_flag":       "1",
		"virology_screening_flag":            "1",
		"virology_screening_mycoplasma_result": "negative",

		"undiff_immstain_marker": []interface{}{
			"SSEA-4###+",
		},
		"undiff_immstain_marker_passage_number": "12",

		"registration_reference_publication_pubmed_id": "26564522",
		"registration_reference":                       "A reference title",
	}
}

func newTestImporter(t *testing.T, database *gorm.DB, source RecordSource, store *memStore) *Importer {
	t.Helper()
	return NewImporter(database, source, store, testutil.Logger(t))
}

func TestImportRecordCreatesGraph(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	imp := newTestImporter(t, database, &fakeSource{}, newMemStore())

	if err := imp.ImportRecord(ctx, testRecord()); err != nil {
		t.Fatalf("import record: %v", err)
	}

	var line types.Cellline
	if err := database.Where("biosamples_id = ?", "SAMEA0001").First(&line).Error; err != nil {
		t.Fatalf("load cell line: %v", err)
	}
	if line.HescregID == nil || *line.HescregID != "CORDi001-A" {
		t.Fatalf("unexpected registry id %v", line.HescregID)
	}
	if line.AlternativeNames != "WTSIi001" {
		t.Fatalf("unexpected alternative names %q", line.AlternativeNames)
	}
	if line.DonorID == nil || line.GeneratorID == nil || line.OwnerID == nil || line.DerivationCountryID == nil {
		t.Fatal("expected donor, generator, owner and country to be linked")
	}

	var donor types.Donor
	if err := database.Where("biosamples_id = ?", "SAMED0001").First(&donor).Error; err != nil {
		t.Fatalf("load donor: %v", err)
	}
	if donor.GenderID == nil {
		t.Fatal("expected donor gender")
	}

	for name, model := range map[string]interface{}{
		"ethics":          &types.CelllineEthics{},
		"derivation":      &types.CelllineDerivation{},
		"culture":         &types.CelllineCultureConditions{},
		"supplement":      &types.CultureMediumSupplement{},
		"karyotype":       &types.CelllineKaryotype{},
		"hla":             &types.CelllineHlaTyping{},
		"str":             &types.CelllineStrFingerprinting{},
		"characterization": &types.CelllineCharacterization{},
		"imune marker":    &types.MarkerImune{},
		"imune molecule":  &types.MarkerImuneMolecule{},
		"publication":     &types.CelllinePublication{},
		"donor disease":   &types.DonorDisease{},
		"line disease":    &types.CelllineDisease{},
	} {
		var n int64
		if err := database.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if n != 1 {
			t.Errorf("expected 1 %s row, got %d", name, n)
		}
	}

	var ethics types.CelllineEthics
	if err := database.First(&ethics).Error; err != nil {
		t.Fatalf("load ethics: %v", err)
	}
	if ethics.DonorConsent == nil || !*ethics.DonorConsent {
		t.Fatal("expected donor consent true")
	}
	if ethics.NoPressureStatement == nil || *ethics.NoPressureStatement {
		t.Fatal("expected no-pressure statement false")
	}
	if ethics.DonorConsentForm != nil {
		t.Fatal("expected unanswered consent form question to stay nil")
	}
}

func TestImportRecordIsIdempotent(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	imp := newTestImporter(t, database, &fakeSource{}, newMemStore())

	if err := imp.ImportRecord(ctx, testRecord()); err != nil {
		t.Fatalf("first import: %v", err)
	}

	var before types.Cellline
	if err := database.Where("biosamples_id = ?", "SAMEA0001").First(&before).Error; err != nil {
		t.Fatalf("load cell line: %v", err)
	}

	if err := imp.ImportRecord(ctx, testRecord()); err != nil {
		t.Fatalf("second import: %v", err)
	}

	var after types.Cellline
	if err := database.Where("biosamples_id = ?", "SAMEA0001").First(&after).Error; err != nil {
		t.Fatalf("reload cell line: %v", err)
	}
	if !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatal("expected unchanged record to skip the save")
	}

	var lines int64
	if err := database.Model(&types.Cellline{}).Count(&lines).Error; err != nil {
		t.Fatalf("count cell lines: %v", err)
	}
	if lines != 1 {
		t.Fatalf("expected 1 cell line, got %d", lines)
	}

	for name, model := range map[string]interface{}{
		"donor":      &types.Donor{},
		"ethics":     &types.CelllineEthics{},
		"supplement": &types.CultureMediumSupplement{},
		"hla":        &types.CelllineHlaTyping{},
		"molecule":   &types.MarkerImuneMolecule{},
	} {
		var n int64
		if err := database.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if n != 1 {
			t.Errorf("expected 1 %s row after re-import, got %d", name, n)
		}
	}
}

func TestImportRecordDiseaseRetraction(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	imp := newTestImporter(t, database, &fakeSource{}, newMemStore())

	if err := imp.ImportRecord(ctx, testRecord()); err != nil {
		t.Fatalf("first import: %v", err)
	}

	retracted := testRecord()
	delete(retracted, "diseases")
	donor := retracted["donor"].(map[string]interface{})
	delete(donor, "diseases")

	if err := imp.ImportRecord(ctx, retracted); err != nil {
		t.Fatalf("second import: %v", err)
	}

	var lineDiseases, donorDiseases, catalog int64
	if err := database.Model(&types.CelllineDisease{}).Count(&lineDiseases).Error; err != nil {
		t.Fatalf("count cell line diseases: %v", err)
	}
	if err := database.Model(&types.DonorDisease{}).Count(&donorDiseases).Error; err != nil {
		t.Fatalf("count donor diseases: %v", err)
	}
	if err := database.Model(&types.Disease{}).Count(&catalog).Error; err != nil {
		t.Fatalf("count disease catalog: %v", err)
	}

	if lineDiseases != 0 || donorDiseases != 0 {
		t.Fatalf("expected disease links deleted, got %d line / %d donor", lineDiseases, donorDiseases)
	}
	if catalog != 1 {
		t.Fatalf("expected disease catalog row to survive, got %d", catalog)
	}
}

func TestImportRecordMissingBiosamplesID(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	imp := newTestImporter(t, database, &fakeSource{}, newMemStore())

	record := testRecord()
	delete(record, "biosamples_id")

	if err := imp.ImportRecord(ctx, record); err != nil {
		t.Fatalf("import record: %v", err)
	}

	var lines int64
	if err := database.Model(&types.Cellline{}).Count(&lines).Error; err != nil {
		t.Fatalf("count cell lines: %v", err)
	}
	if lines != 0 {
		t.Fatalf("expected no cell lines, got %d", lines)
	}
}

func TestRunAbortsOnListFailure(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	source := &fakeSource{listErr: errors.New("upstream returned 500")}
	imp := newTestImporter(t, database, source, newMemStore())

	if err := imp.Run(ctx); err == nil {
		t.Fatal("expected list failure to abort the run")
	}

	var lines int64
	if err := database.Model(&types.Cellline{}).Count(&lines).Error; err != nil {
		t.Fatalf("count cell lines: %v", err)
	}
	if lines != 0 {
		t.Fatalf("expected no cell lines, got %d", lines)
	}
}

func vectorRecord(enc string) map[string]interface{} {
	record := map[string]interface{}{
		"biosamples_id":      "SAMEA0002",
		"id":                 "CORDi002-A",
		"name":               "CORDi002-A",
		"vector_type":        "Integrating",
		"integrating_vector": "lentivirus",
	}
	if enc != "" {
		record["vector_map_file"] = "https://registry.example.org/media/vmap.pdf"
		record["vector_map_file_enc"] = enc
	}
	return record
}

func TestImportRecordAttachmentLifecycle(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	source := &fakeSource{
		files: map[string]string{
			"https://registry.example.org/media/vmap.pdf": "pdf bytes",
		},
	}
	store := newMemStore()
	imp := newTestImporter(t, database, source, store)

	loadVector := func() types.CelllineIntegratingVector {
		var vector types.CelllineIntegratingVector
		if err := database.First(&vector).Error; err != nil {
			t.Fatalf("load vector: %v", err)
		}
		return vector
	}

	if err := imp.ImportRecord(ctx, vectorRecord("enc-1")); err != nil {
		t.Fatalf("first import: %v", err)
	}
	vector := loadVector()
	if vector.VectorMapFile.Path == "" || vector.VectorMapFile.Enc != "enc-1" {
		t.Fatalf("unexpected stored attachment %+v", vector.VectorMapFile)
	}
	if len(store.objects) != 1 {
		t.Fatalf("expected 1 stored object, got %d", len(store.objects))
	}
	firstPath := vector.VectorMapFile.Path

	if err := imp.ImportRecord(ctx, vectorRecord("enc-1")); err != nil {
		t.Fatalf("unchanged import: %v", err)
	}
	if got := loadVector().VectorMapFile.Path; got != firstPath {
		t.Fatalf("matching fingerprint should keep the file, got %q", got)
	}
	if len(store.objects) != 1 {
		t.Fatalf("expected 1 stored object after no-op import, got %d", len(store.objects))
	}

	if err := imp.ImportRecord(ctx, vectorRecord("enc-2")); err != nil {
		t.Fatalf("replacing import: %v", err)
	}
	vector = loadVector()
	if vector.VectorMapFile.Path == firstPath || vector.VectorMapFile.Enc != "enc-2" {
		t.Fatalf("expected replaced attachment, got %+v", vector.VectorMapFile)
	}
	if _, stale := store.objects[firstPath]; stale {
		t.Fatal("expected the replaced file to be deleted")
	}
	if len(store.objects) != 1 {
		t.Fatalf("expected 1 stored object after replacement, got %d", len(store.objects))
	}

	if err := imp.ImportRecord(ctx, vectorRecord("")); err != nil {
		t.Fatalf("retracting import: %v", err)
	}
	vector = loadVector()
	if !vector.VectorMapFile.Empty() {
		t.Fatalf("expected cleared attachment, got %+v", vector.VectorMapFile)
	}
	if len(store.objects) != 0 {
		t.Fatalf("expected empty store, got %d objects", len(store.objects))
	}
}

func TestRunSkipsBadRecords(t *testing.T) {
	ctx := context.Background()
	database := testutil.DB(t)
	source := &fakeSource{
		ids: []string{"CORDi000-A", "CORDi001-A"},
		records: map[string]map[string]interface{}{
			"CORDi001-A": testRecord(),
		},
	}
	imp := newTestImporter(t, database, source, newMemStore())

	if err := imp.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	var lines int64
	if err := database.Model(&types.Cellline{}).Count(&lines).Error; err != nil {
		t.Fatalf("count cell lines: %v", err)
	}
	if lines != 1 {
		t.Fatalf("expected the good record to import, got %d lines", lines)
	}
}
