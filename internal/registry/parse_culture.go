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

func (imp *Importer) parseCultureConditions(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	medium := v.Text("culture_conditions_medium_culture_medium")

	conditions, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineCultureConditions {
		return &types.CelllineCultureConditions{ID: uuid.New(), CelllineID: line.ID}
	}, func(cc *types.CelllineCultureConditions) {
		cc.SurfaceCoating = v.String("surface_coating")
		cc.FeederCellID = v.String("feeder_cells_ont_id")
		cc.FeederCellType = v.String("feeder_cells_name")

		cc.PassageMethod = otherFallback(v, "passage_method", "passage_method_other")
		cc.Enzymatically = otherFallback(v, "passage_method_enzymatic", "passage_method_enzymatic_other")
		cc.EnzymeFree = otherFallback(v, "passage_method_enzyme_free", "passage_method_enzyme_free_other")

		cc.O2Concentration = v.Int("o2_concentration")
		cc.CO2Concentration = v.Int("co2_concentration")
		cc.PassageNumberBanked = v.String("passage_number_banked")
		cc.NumberOfVialsBanked = v.String("number_of_vials_banked")

		// Unanswered rock inhibitor questions leave the stored answer alone.
		if v.Has("rock_inhibitor_used_at_passage_flag") {
			cc.RockInhibitorUsedAtPassage = v.ExtendedBool("rock_inhibitor_used_at_passage_flag")
		}
		if v.Has("rock_inhibitor_used_at_cryo_flag") {
			cc.RockInhibitorUsedAtCryo = v.ExtendedBool("rock_inhibitor_used_at_cryo_flag")
		}
		if v.Has("rock_inhibitor_used_at_thaw_flag") {
			cc.RockInhibitorUsedAtThaw = v.ExtendedBool("rock_inhibitor_used_at_thaw_flag")
		}

		if medium != "other" {
			cc.CultureMedium = v.String("culture_conditions_medium_culture_medium")
		}
	})
	if err != nil {
		return false, err
	}
	dirty := created || changed

	supplementsKey := "culture_conditions_medium_culture_medium_supplements"
	if medium == "other" {
		supplementsKey = "culture_conditions_medium_culture_medium_other_supplements"

		_, otherCreated, otherChanged, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
			"culture_conditions_id": conditions.ID,
		}, func() *types.CultureMediumOther {
			return &types.CultureMediumOther{ID: uuid.New(), CultureConditionsID: conditions.ID}
		}, func(o *types.CultureMediumOther) {
			o.Base = v.String("culture_conditions_medium_culture_medium_other_base")
			o.ProteinSource = otherFallback(v,
				"culture_conditions_medium_culture_medium_other_protein_source",
				"culture_conditions_medium_culture_medium_other_protein_source_other")
			o.SerumConcentration = v.Int("culture_conditions_medium_culture_medium_other_concentration")
		})
		if err != nil {
			return dirty, err
		}
		if otherCreated || otherChanged {
			dirty = true
		}
	}

	supplementsDirty, err := imp.parseMediumSupplements(ctx, tx, conditions, v.StringList(supplementsKey))
	if err != nil {
		return dirty, err
	}

	return dirty || supplementsDirty, nil
}

// parseMediumSupplements reconciles the supplement rows against the
// "name###amount###unit" encoded registry list.
func (imp *Importer) parseMediumSupplements(ctx context.Context, tx *gorm.DB, conditions *types.CelllineCultureConditions, supplements []string) (bool, error) {
	old, err := repos.ListBy[types.CultureMediumSupplement](ctx, tx, map[string]interface{}{
		"culture_conditions_id": conditions.ID,
	}, "supplement")
	if err != nil {
		return false, err
	}

	rec := Reconciler[string, types.CultureMediumSupplement, string]{
		Label: "culture medium supplement",
		Log:   imp.log,
		Old:   old,
		Items: supplements,
		Key: func(s *types.CultureMediumSupplement) string {
			return s.Supplement
		},
		Parse: func(encoded string) (*types.CultureMediumSupplement, bool, error) {
			parts := strings.Split(encoded, compoundDelimiter)
			if len(parts) != 3 {
				return nil, false, fmt.Errorf("malformed supplement %q", encoded)
			}
			name, amount, unitName := parts[0], parts[1], parts[2]
			if name == "" {
				return nil, false, nil
			}

			unit, err := imp.res.Unit(ctx, tx, unitName)
			if err != nil {
				return nil, false, err
			}

			supplement, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
				"culture_conditions_id": conditions.ID,
				"supplement":            name,
			}, func() *types.CultureMediumSupplement {
				return &types.CultureMediumSupplement{
					ID:                  uuid.New(),
					CultureConditionsID: conditions.ID,
					Supplement:          name,
				}
			}, func(s *types.CultureMediumSupplement) {
				if amount != "" {
					s.Amount = strPtr(amount)
				} else {
					s.Amount = nil
				}
				if unit != nil {
					s.UnitID = &unit.ID
				} else {
					s.UnitID = nil
				}
			})
			if err != nil {
				return nil, false, err
			}
			return supplement, created || changed, nil
		},
		Delete: func(s *types.CultureMediumSupplement) error {
			return repos.Delete(ctx, tx, s)
		},
	}

	return rec.Run()
}
