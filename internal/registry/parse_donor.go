package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

// parseDonor upserts the donor record keyed by its biosamples id and
// reconciles the donor disease set. The donor is saved on its own; donor
// changes do not mark the owning cell line dirty.
func (imp *Importer) parseDonor(ctx context.Context, tx *gorm.DB, dv Values) (*types.Donor, error) {
	biosamplesID := dv.Text("biosamples_id")
	if biosamplesID == "" {
		imp.log.Warn("Missing donor biosamples id")
		return nil, nil
	}

	gender, err := imp.res.Gender(ctx, tx, dv.Text("gender"))
	if err != nil {
		return nil, err
	}

	donor, created, err := repos.GetOrCreate(ctx, tx, map[string]interface{}{
		"biosamples_id": biosamplesID,
	}, func() *types.Donor {
		rec := &types.Donor{ID: uuid.New(), BiosamplesID: biosamplesID}
		if gender != nil {
			rec.GenderID = &gender.ID
		}
		return rec
	})
	if err != nil {
		return nil, err
	}

	before := *donor

	if gender != nil && (donor.GenderID == nil || *donor.GenderID != gender.ID) {
		if donor.GenderID != nil {
			imp.log.Warn("Changing donor gender", "donor", biosamplesID, "gender", gender.Name)
		}
		donor.GenderID = &gender.ID
	}
	if ids := dv.Raw("internal_ids"); ids != nil {
		encoded, err := json.Marshal(ids)
		if err == nil {
			donor.ProviderDonorIDs = datatypes.JSON(encoded)
		}
	}
	if ethnicity := dv.String("ethnicity"); ethnicity != nil {
		donor.Ethnicity = ethnicity
	}

	if !created && fieldsChanged(before, *donor) {
		imp.log.Info("Updated donor", "donor", biosamplesID)
		if err := tx.WithContext(ctx).Save(donor).Error; err != nil {
			return nil, err
		}
	}

	if err := imp.parseDonorDiseases(ctx, tx, dv, donor); err != nil {
		return nil, err
	}

	return donor, nil
}

func (imp *Importer) parseDonorDiseases(ctx context.Context, tx *gorm.DB, dv Values, donor *types.Donor) error {
	old, err := repos.ListBy[types.DonorDisease](ctx, tx, map[string]interface{}{"donor_id": donor.ID}, "id")
	if err != nil {
		return err
	}

	rec := Reconciler[map[string]interface{}, types.DonorDisease, string]{
		Label: "donor disease",
		Log:   imp.log,
		Old:   old,
		Items: dv.List("diseases"),
		Key: func(d *types.DonorDisease) string {
			return diseaseKey(d.DiseaseID, d.DiseaseNotNormalised)
		},
		Parse: func(item map[string]interface{}) (*types.DonorDisease, bool, error) {
			return imp.parseDonorDisease(ctx, tx, dv.Sub(item), donor)
		},
		Delete: func(d *types.DonorDisease) error {
			if err := imp.deleteVariants(ctx, tx, types.VariantOwnerDonorDisease, d.ID); err != nil {
				return err
			}
			return repos.Delete(ctx, tx, d)
		},
	}

	_, err = rec.Run()
	return err
}

func (imp *Importer) parseDonorDisease(ctx context.Context, tx *gorm.DB, sv Values, donor *types.Donor) (*types.DonorDisease, bool, error) {
	disease, err := imp.res.Disease(ctx, tx, sv.Text("purl"), sv.Text("purl_name"), sv.StringList("synonyms"))
	if err != nil {
		return nil, false, err
	}
	if disease == nil {
		return nil, false, nil
	}

	notNormalised := sv.String("other")

	record, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"donor_id":               donor.ID,
		"disease_id":             disease.ID,
		"disease_not_normalised": nullableKey(notNormalised),
	}, func() *types.DonorDisease {
		return &types.DonorDisease{
			ID:                   uuid.New(),
			DonorID:              donor.ID,
			DiseaseID:            &disease.ID,
			DiseaseNotNormalised: notNormalised,
		}
	}, func(d *types.DonorDisease) {
		d.Primary = sv.Bool("primary")
		d.DiseaseStage = sv.String("stage")
		d.AffectedStatus = sv.String("affected")
		d.Carrier = sv.String("carrier")
		d.Notes = sv.String("free_text")
	})
	if err != nil {
		if repos.IsUniqueViolation(err) {
			imp.log.Warn("Duplicate donor disease", "disease", disease.Name)
			return nil, false, nil
		}
		return nil, false, err
	}
	if created {
		imp.log.Info("Created new donor disease", "disease", disease.Name)
	}

	variantsDirty, err := imp.parseDonorDiseaseVariants(ctx, tx, sv, record)
	if err != nil {
		return nil, false, err
	}

	return record, changed || variantsDirty, nil
}

func (imp *Importer) parseDonorDiseaseVariants(ctx context.Context, tx *gorm.DB, sv Values, disease *types.DonorDisease) (bool, error) {
	old, err := repos.ListBy[types.DiseaseVariant](ctx, tx, map[string]interface{}{
		"owner_kind": types.VariantOwnerDonorDisease,
		"owner_id":   disease.ID,
	}, "id")
	if err != nil {
		return false, err
	}

	rec := Reconciler[map[string]interface{}, types.DiseaseVariant, string]{
		Label: "donor disease variant",
		Log:   imp.log,
		Old:   old,
		Items: sv.List("variants"),
		Key:   variantKey,
		Parse: func(item map[string]interface{}) (*types.DiseaseVariant, bool, error) {
			return imp.parseDonorDiseaseVariant(ctx, tx, sv.Sub(item), disease)
		},
		Delete: func(v *types.DiseaseVariant) error {
			return repos.Delete(ctx, tx, v)
		},
	}

	return rec.Run()
}

func (imp *Importer) parseDonorDiseaseVariant(ctx context.Context, tx *gorm.DB, vv Values, disease *types.DonorDisease) (*types.DiseaseVariant, bool, error) {
	geneName := vv.Text("gene", "name")
	if geneName == "" {
		return nil, false, nil
	}

	gene, err := imp.res.Molecule(ctx, tx, geneName, types.MoleculeKindGene, vv.Text("gene", "database_name"), vv.Text("gene", "database_id"))
	if err != nil {
		return nil, false, err
	}

	record, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"owner_kind": types.VariantOwnerDonorDisease,
		"owner_id":   disease.ID,
		"kind":       types.VariantKindVariant,
		"gene_id":    gene.ID,
	}, func() *types.DiseaseVariant {
		return &types.DiseaseVariant{
			ID:        uuid.New(),
			OwnerKind: types.VariantOwnerDonorDisease,
			OwnerID:   disease.ID,
			Kind:      types.VariantKindVariant,
			GeneID:    &gene.ID,
		}
	}, func(rec *types.DiseaseVariant) {
		rec.ChromosomeLocation = vv.String("chromosome_location")
		rec.NucleotideSequenceHgvs = vv.String("nucleotide_sequence_hgvs")
		rec.ProteinSequenceHgvs = vv.String("protein_sequence_hgvs")
		rec.ZygosityStatus = vv.String("zygosity_status")
		rec.ClinvarID = vv.String("clinvar_id")
		rec.DbsnpID = vv.String("dbsnp_id")
		rec.DbvarID = vv.String("dbvar_id")
		rec.PublicationPmid = vv.String("publication_pmid")
		rec.Notes = vv.String("free_text")
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		imp.log.Info("Created new donor disease variant", "gene", gene.Name)
	}

	return record, changed, nil
}

func (imp *Importer) deleteVariants(ctx context.Context, tx *gorm.DB, ownerKind string, ownerID uuid.UUID) error {
	return tx.WithContext(ctx).
		Where("owner_kind = ? AND owner_id = ?", ownerKind, ownerID).
		Delete(&types.DiseaseVariant{}).Error
}

func diseaseKey(diseaseID *uuid.UUID, notNormalised *string) string {
	id := ""
	if diseaseID != nil {
		id = diseaseID.String()
	}
	return fmt.Sprintf("%s|%s", id, strValue(notNormalised))
}

func variantKey(v *types.DiseaseVariant) string {
	gene := ""
	if v.GeneID != nil {
		gene = v.GeneID.String()
	}
	return fmt.Sprintf("%s|%s", v.Kind, gene)
}
