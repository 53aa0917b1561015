package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

// parseCelllineDiseases reconciles the cell line disease set, returning
// whether anything about it changed.
func (imp *Importer) parseCelllineDiseases(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	old, err := repos.ListBy[types.CelllineDisease](ctx, tx, map[string]interface{}{"cell_line_id": line.ID}, "id")
	if err != nil {
		return false, err
	}

	rec := Reconciler[map[string]interface{}, types.CelllineDisease, string]{
		Label: "cell line disease",
		Log:   imp.log,
		Old:   old,
		Items: v.List("diseases"),
		Key: func(d *types.CelllineDisease) string {
			return diseaseKey(d.DiseaseID, d.DiseaseNotNormalised)
		},
		Parse: func(item map[string]interface{}) (*types.CelllineDisease, bool, error) {
			return imp.parseCelllineDisease(ctx, tx, v.Sub(item), line)
		},
		Delete: func(d *types.CelllineDisease) error {
			if err := imp.deleteVariants(ctx, tx, types.VariantOwnerCelllineDisease, d.ID); err != nil {
				return err
			}
			return repos.Delete(ctx, tx, d)
		},
	}

	return rec.Run()
}

func (imp *Importer) parseCelllineDisease(ctx context.Context, tx *gorm.DB, sv Values, line *types.Cellline) (*types.CelllineDisease, bool, error) {
	disease, err := imp.res.Disease(ctx, tx, sv.Text("purl"), sv.Text("purl_name"), sv.StringList("synonyms"))
	if err != nil {
		return nil, false, err
	}
	if disease == nil {
		return nil, false, nil
	}

	notNormalised := sv.String("other")

	record, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id":           line.ID,
		"disease_id":             disease.ID,
		"disease_not_normalised": nullableKey(notNormalised),
	}, func() *types.CelllineDisease {
		return &types.CelllineDisease{
			ID:                   uuid.New(),
			CelllineID:           line.ID,
			DiseaseID:            &disease.ID,
			DiseaseNotNormalised: notNormalised,
		}
	}, func(d *types.CelllineDisease) {
		d.Primary = sv.Bool("primary")
		d.Notes = sv.String("free_text")
	})
	if err != nil {
		if repos.IsUniqueViolation(err) {
			imp.log.Warn("Duplicate cell line disease", "disease", disease.Name)
			return nil, false, nil
		}
		return nil, false, err
	}
	if created {
		imp.log.Info("Created new cell line disease", "disease", disease.Name)
	}

	variantsDirty, err := imp.parseCelllineDiseaseVariants(ctx, tx, sv, record)
	if err != nil {
		return nil, false, err
	}

	return record, changed || variantsDirty, nil
}

func (imp *Importer) parseCelllineDiseaseVariants(ctx context.Context, tx *gorm.DB, sv Values, disease *types.CelllineDisease) (bool, error) {
	old, err := repos.ListBy[types.DiseaseVariant](ctx, tx, map[string]interface{}{
		"owner_kind": types.VariantOwnerCelllineDisease,
		"owner_id":   disease.ID,
	}, "id")
	if err != nil {
		return false, err
	}

	rec := Reconciler[map[string]interface{}, types.DiseaseVariant, string]{
		Label: "cell line disease variant",
		Log:   imp.log,
		Old:   old,
		Items: sv.List("variants"),
		Key:   variantKey,
		Parse: func(item map[string]interface{}) (*types.DiseaseVariant, bool, error) {
			return imp.parseCelllineDiseaseVariant(ctx, tx, sv.Sub(item), disease)
		},
		Delete: func(v *types.DiseaseVariant) error {
			return repos.Delete(ctx, tx, v)
		},
	}

	return rec.Run()
}

// parseCelllineDiseaseVariant dispatches on the variant's declared type;
// unknown types are skipped.
func (imp *Importer) parseCelllineDiseaseVariant(ctx context.Context, tx *gorm.DB, vv Values, disease *types.CelllineDisease) (*types.DiseaseVariant, bool, error) {
	geneName := vv.Text("gene", "name")
	if geneName == "" {
		return nil, false, nil
	}

	gene, err := imp.res.Molecule(ctx, tx, geneName, types.MoleculeKindGene, vv.Text("gene", "database_name"), vv.Text("gene", "database_id"))
	if err != nil {
		return nil, false, err
	}

	var transgene *types.Molecule
	if name := vv.Text("transgene", "name"); name != "" {
		transgene, err = imp.res.Molecule(ctx, tx, name, types.MoleculeKindGene, vv.Text("transgene", "database_name"), vv.Text("transgene", "database_id"))
		if err != nil {
			return nil, false, err
		}
	}

	virus, transposon, err := imp.variantDelivery(ctx, tx, vv)
	if err != nil {
		return nil, false, err
	}

	var kind string
	var assign func(*types.DiseaseVariant)

	switch vv.Text("type") {
	case "Variant":
		kind = types.VariantKindVariant
		assign = func(rec *types.DiseaseVariant) {
			rec.ChromosomeLocation = vv.String("chromosome_location")
			rec.NucleotideSequenceHgvs = vv.String("nucleotide_sequence_hgvs")
			rec.ProteinSequenceHgvs = vv.String("protein_sequence_hgvs")
			rec.ZygosityStatus = vv.String("zygosity_status")
			rec.ClinvarID = vv.String("clinvar_id")
			rec.DbsnpID = vv.String("dbsnp_id")
			rec.DbvarID = vv.String("dbvar_id")
			rec.PublicationPmid = vv.String("publication_pmid")
			rec.Notes = vv.String("free_text")
		}
	case "Isogenic modification":
		kind = types.VariantKindIsogenic
		assign = func(rec *types.DiseaseVariant) {
			rec.ChromosomeLocation = vv.String("chromosome_location")
			rec.NucleotideSequenceHgvs = vv.String("nucleotide_sequence_hgvs")
			rec.ProteinSequenceHgvs = vv.String("protein_sequence_hgvs")
			rec.ZygosityStatus = vv.String("zygosity_status")
			rec.ModificationType = vv.String("isogenic_change_type")
			rec.Notes = vv.String("free_text")
		}
	case "Transgene expression":
		kind = types.VariantKindTransgeneExpression
		assign = func(rec *types.DiseaseVariant) {
			rec.ChromosomeLocation = vv.String("chromosome_location")
			rec.DeliveryMethod = vv.String("delivery_method")
			rec.VirusID = virusID(virus)
			rec.TransposonID = transposonID(transposon)
			rec.Notes = vv.String("free_text")
		}
	case "Gene knock-out":
		kind = types.VariantKindGeneKnockOut
		assign = func(rec *types.DiseaseVariant) {
			rec.ChromosomeLocation = vv.String("chromosome_location")
			rec.DeliveryMethod = vv.String("delivery_method")
			rec.VirusID = virusID(virus)
			rec.TransposonID = transposonID(transposon)
			rec.Notes = vv.String("free_text")
		}
	case "Gene knock-in":
		kind = types.VariantKindGeneKnockIn
		assign = func(rec *types.DiseaseVariant) {
			if transgene != nil {
				rec.TransgeneID = &transgene.ID
			}
			rec.ChromosomeLocation = vv.String("chromosome_location")
			rec.ChromosomeLocationTransgene = vv.String("transgene_chromosome_location")
			rec.DeliveryMethod = vv.String("delivery_method")
			rec.VirusID = virusID(virus)
			rec.TransposonID = transposonID(transposon)
			rec.Notes = vv.String("free_text")
		}
	default:
		return nil, false, nil
	}

	record, _, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"owner_kind": types.VariantOwnerCelllineDisease,
		"owner_id":   disease.ID,
		"kind":       kind,
		"gene_id":    gene.ID,
	}, func() *types.DiseaseVariant {
		return &types.DiseaseVariant{
			ID:        uuid.New(),
			OwnerKind: types.VariantOwnerCelllineDisease,
			OwnerID:   disease.ID,
			Kind:      kind,
			GeneID:    &gene.ID,
		}
	}, assign)
	if err != nil {
		return nil, false, err
	}

	return record, changed, nil
}

// variantDelivery resolves the variant's virus and transposon fields, each
// with its own "Other" free-text override.
func (imp *Importer) variantDelivery(ctx context.Context, tx *gorm.DB, vv Values) (*types.Virus, *types.Transposon, error) {
	var virus *types.Virus
	var err error
	if name := otherFallbackValue(vv, "delivery_method_virus", "delivery_method_virus_other"); name != "" {
		virus, err = imp.res.Virus(ctx, tx, name)
		if err != nil {
			return nil, nil, err
		}
	}

	var transposon *types.Transposon
	if name := otherFallbackValue(vv, "delivery_method_transposon_type", "delivery_method_transposon_type_other"); name != "" {
		transposon, err = imp.res.Transposon(ctx, tx, name)
		if err != nil {
			return nil, nil, err
		}
	}

	return virus, transposon, nil
}

// otherFallbackValue resolves the selector/override pair into the term name
// to use: the override replaces an "Other" selector when present, and an
// "Other" selector without an override keeps the literal selector value.
func otherFallbackValue(v Values, field, otherField string) string {
	val := v.Text(field)
	if val == "Other" || val == "other" {
		if other := v.Text(otherField); other != "" {
			return other
		}
	}
	return val
}

func virusID(v *types.Virus) *uuid.UUID {
	if v == nil {
		return nil
	}
	return &v.ID
}

func transposonID(t *types.Transposon) *uuid.UUID {
	if t == nil {
		return nil
	}
	return &t.ID
}
