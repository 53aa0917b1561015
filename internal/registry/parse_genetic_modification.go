package registry

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

// Registry identifiers for the genetic modification sub-records. The
// misspelled isogenic key is what the registry actually sends.
const (
	modTransgeneExpression = "gen_mod_transgene_expression"
	modGeneKnockOut        = "gen_mod_gene_knock_out"
	modGeneKnockIn         = "gen_mod_gene_knock_in"
	modIsogenic            = "gen_mod_isogenic_modication"
)

func (imp *Importer) parseGeneticModifications(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	if !v.Has("genetic_modification_flag") {
		return false, nil
	}

	_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineGeneticModification {
		return &types.CelllineGeneticModification{ID: uuid.New(), CelllineID: line.ID}
	}, func(gm *types.CelllineGeneticModification) {
		gm.Modified = v.NullBool("genetic_modification_flag")
		if raw := v.Raw("genetic_modification_types"); raw != nil {
			if encoded, err := json.Marshal(raw); err == nil {
				gm.Types = encoded
			}
		} else {
			gm.Types = nil
		}
	})
	if err != nil {
		return false, err
	}
	dirty := created || changed

	for _, modType := range v.StringList("genetic_modification_types") {
		var subDirty bool
		var err error

		switch modType {
		case modTransgeneExpression:
			subDirty, err = imp.parseTransgeneExpression(ctx, tx, v, line)
		case modGeneKnockOut:
			subDirty, err = imp.parseGeneKnockOut(ctx, tx, v, line)
		case modGeneKnockIn:
			subDirty, err = imp.parseGeneKnockIn(ctx, tx, v, line)
		case modIsogenic:
			subDirty, err = imp.parseIsogenicModification(ctx, tx, v, line)
		default:
			imp.log.Warn("Unknown genetic modification type", "type", modType)
			continue
		}
		if err != nil {
			return dirty, err
		}
		dirty = dirty || subDirty
	}

	return dirty, nil
}

func (imp *Importer) parseTransgeneExpression(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	virus, err := imp.res.Virus(ctx, tx, modTermName(v, "transgene_viral_method_spec"))
	if err != nil {
		return false, err
	}
	transposon, err := imp.res.Transposon(ctx, tx, modTermName(v, "transgene_transposon_method_spec"))
	if err != nil {
		return false, err
	}

	record, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.GeneticModificationTransgeneExpression {
		return &types.GeneticModificationTransgeneExpression{ID: uuid.New(), CelllineID: line.ID}
	}, func(t *types.GeneticModificationTransgeneExpression) {
		t.DeliveryMethod = otherFallback(v, "transgene_delivery_method", "transgene_delivery_method_other")
		t.VirusID = virusID(virus)
		t.TransposonID = transposonID(transposon)
	})
	if err != nil {
		return false, err
	}

	genes, err := imp.decodeGenes(ctx, tx, v.StringList("genetic_modification_transgene_expression_list"))
	if err != nil {
		return created || changed, err
	}
	genesDirty, err := syncSet(ctx, tx, record, "Genes", genes, moleculeKey)
	if err != nil {
		return created || changed, err
	}

	return created || changed || genesDirty, nil
}

func (imp *Importer) parseGeneKnockOut(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	virus, err := imp.res.Virus(ctx, tx, modTermName(v, "knockout_viral_method_spec"))
	if err != nil {
		return false, err
	}
	transposon, err := imp.res.Transposon(ctx, tx, modTermName(v, "knockout_transposon_method_spec"))
	if err != nil {
		return false, err
	}

	record, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.GeneticModificationGeneKnockOut {
		return &types.GeneticModificationGeneKnockOut{ID: uuid.New(), CelllineID: line.ID}
	}, func(k *types.GeneticModificationGeneKnockOut) {
		k.DeliveryMethod = otherFallback(v, "knockout_delivery_method", "knockout_delivery_method_other")
		k.VirusID = virusID(virus)
		k.TransposonID = transposonID(transposon)
	})
	if err != nil {
		return false, err
	}

	genes, err := imp.decodeGenes(ctx, tx, v.StringList("genetic_modification_knockout_list"))
	if err != nil {
		return created || changed, err
	}
	genesDirty, err := syncSet(ctx, tx, record, "TargetGenes", genes, moleculeKey)
	if err != nil {
		return created || changed, err
	}

	return created || changed || genesDirty, nil
}

func (imp *Importer) parseGeneKnockIn(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	virus, err := imp.res.Virus(ctx, tx, modTermName(v, "knockin_viral_method_spec"))
	if err != nil {
		return false, err
	}
	transposon, err := imp.res.Transposon(ctx, tx, modTermName(v, "knockin_transposon_method_spec"))
	if err != nil {
		return false, err
	}

	record, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.GeneticModificationGeneKnockIn {
		return &types.GeneticModificationGeneKnockIn{ID: uuid.New(), CelllineID: line.ID}
	}, func(k *types.GeneticModificationGeneKnockIn) {
		k.DeliveryMethod = otherFallback(v, "knockin_delivery_method", "knockin_delivery_method_other")
		k.VirusID = virusID(virus)
		k.TransposonID = transposonID(transposon)
	})
	if err != nil {
		return false, err
	}

	targets, err := imp.decodeGenes(ctx, tx, v.StringList("genetic_modification_knockin_target_gene_list"))
	if err != nil {
		return created || changed, err
	}
	targetsDirty, err := syncSet(ctx, tx, record, "TargetGenes", targets, moleculeKey)
	if err != nil {
		return created || changed, err
	}

	transgenes, err := imp.decodeGenes(ctx, tx, v.StringList("genetic_modification_knockin_transgene_list"))
	if err != nil {
		return created || changed || targetsDirty, err
	}
	transgenesDirty, err := syncSet(ctx, tx, record, "Transgenes", transgenes, moleculeKey)
	if err != nil {
		return created || changed || targetsDirty, err
	}

	return created || changed || targetsDirty || transgenesDirty, nil
}

func (imp *Importer) parseIsogenicModification(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	record, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.GeneticModificationIsogenic {
		return &types.GeneticModificationIsogenic{ID: uuid.New(), CelllineID: line.ID}
	}, func(i *types.GeneticModificationIsogenic) {
		i.ChangeType = v.String("genetic_modification_isogenic_modified_locus_change_type")
		i.ModifiedSequence = v.String("genetic_modification_isogenic_modified_locus")
	})
	if err != nil {
		return false, err
	}

	loci, err := imp.decodeGenes(ctx, tx, v.StringList("genetic_modification_isogenic_target_locus_list"))
	if err != nil {
		return created || changed, err
	}
	lociDirty, err := syncSet(ctx, tx, record, "TargetLocus", loci, moleculeKey)
	if err != nil {
		return created || changed, err
	}

	return created || changed || lociDirty, nil
}

// modTermName resolves a delivery vehicle selector where "Other" defers to
// the paired free-text field, or to no vehicle at all when that is empty.
func modTermName(v Values, field string) string {
	name := v.Text(field)
	if name != "Other" {
		return name
	}
	return v.Text(field + "_other")
}
