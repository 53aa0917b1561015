package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

func (imp *Importer) parseDiseaseGenotype(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	if !v.Has("carries_disease_phenotype_associated_variants_flag") {
		return false, nil
	}

	genotype, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineDiseaseGenotype {
		return &types.CelllineDiseaseGenotype{ID: uuid.New(), CelllineID: line.ID}
	}, func(g *types.CelllineDiseaseGenotype) {
		g.CarriesDiseaseAssociatedVariants = v.NullBool("carries_disease_phenotype_associated_variants_flag")
		g.VariantOfInterest = v.NullBool("variant_of_interest_flag")
		g.AlleleCarried = v.String("rs_allele_carried")
		g.CellLineForm = v.String("rs_cell_line_variant_homozygote_heterozygote")
		g.Chromosome = v.String("variant_details_chromosome")
		g.Coordinate = v.String("variant_details_coordinate")
		g.ReferenceAllele = v.String("variant_details_ref_allele")
		g.AlternativeAllele = v.String("variant_details_alt_allele")
		g.ProteinSequenceVariants = v.String("description_sequence_changes")

		if assembly := v.String("variant_details_assembly"); assembly != nil {
			g.Assembly = assembly
		} else {
			g.Assembly = v.String("variant_details_assembly_other")
		}
	})
	if err != nil {
		return false, err
	}
	dirty := created || changed

	snpsDirty, err := imp.parseGenotypingSNPs(ctx, tx, genotype, v.StringList("snp_list"))
	if err != nil {
		return dirty, err
	}
	rsDirty, err := imp.parseGenotypingRsNumbers(ctx, tx, genotype, v.StringList("rs_number_list"))
	if err != nil {
		return dirty || snpsDirty, err
	}

	return dirty || snpsDirty || rsDirty, nil
}

func (imp *Importer) parseGenotypingSNPs(ctx context.Context, tx *gorm.DB, genotype *types.CelllineDiseaseGenotype, snps []string) (bool, error) {
	old, err := repos.ListBy[types.GenotypingSNP](ctx, tx, map[string]interface{}{
		"disease_genotype_id": genotype.ID,
	}, "gene_name")
	if err != nil {
		return false, err
	}

	rec := Reconciler[string, types.GenotypingSNP, string]{
		Label: "genotyping SNP",
		Log:   imp.log,
		Old:   old,
		Items: snps,
		Key: func(s *types.GenotypingSNP) string {
			return s.GeneName + "|" + s.ChromosomalPosition
		},
		Parse: func(encoded string) (*types.GenotypingSNP, bool, error) {
			parts := strings.Split(encoded, compoundDelimiter)
			if len(parts) != 2 {
				return nil, false, fmt.Errorf("malformed SNP %q", encoded)
			}

			snp, created, err := repos.GetOrCreate(ctx, tx, map[string]interface{}{
				"disease_genotype_id":  genotype.ID,
				"gene_name":            parts[0],
				"chromosomal_position": parts[1],
			}, func() *types.GenotypingSNP {
				return &types.GenotypingSNP{
					ID:                  uuid.New(),
					DiseaseGenotypeID:   genotype.ID,
					GeneName:            parts[0],
					ChromosomalPosition: parts[1],
				}
			})
			if err != nil {
				return nil, false, err
			}
			return snp, created, nil
		},
		Delete: func(s *types.GenotypingSNP) error {
			return repos.Delete(ctx, tx, s)
		},
	}

	return rec.Run()
}

func (imp *Importer) parseGenotypingRsNumbers(ctx context.Context, tx *gorm.DB, genotype *types.CelllineDiseaseGenotype, rsNumbers []string) (bool, error) {
	old, err := repos.ListBy[types.GenotypingRsNumber](ctx, tx, map[string]interface{}{
		"disease_genotype_id": genotype.ID,
	}, "rs_number")
	if err != nil {
		return false, err
	}

	rec := Reconciler[string, types.GenotypingRsNumber, string]{
		Label: "genotyping rs number",
		Log:   imp.log,
		Old:   old,
		Items: rsNumbers,
		Key: func(r *types.GenotypingRsNumber) string {
			return r.RsNumber
		},
		Parse: func(encoded string) (*types.GenotypingRsNumber, bool, error) {
			parts := strings.Split(encoded, compoundDelimiter)
			if len(parts) != 2 {
				return nil, false, fmt.Errorf("malformed rs number %q", encoded)
			}

			rs, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
				"disease_genotype_id": genotype.ID,
				"rs_number":           parts[0],
			}, func() *types.GenotypingRsNumber {
				return &types.GenotypingRsNumber{
					ID:                uuid.New(),
					DiseaseGenotypeID: genotype.ID,
					RsNumber:          parts[0],
				}
			}, func(r *types.GenotypingRsNumber) {
				r.Link = parts[1]
			})
			if err != nil {
				return nil, false, err
			}
			return rs, created || changed, nil
		},
		Delete: func(r *types.GenotypingRsNumber) error {
			return repos.Delete(ctx, tx, r)
		},
	}

	return rec.Run()
}
