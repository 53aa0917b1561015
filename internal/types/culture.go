package types

import (
	"github.com/google/uuid"
)

type CelllineCultureConditions struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	SurfaceCoating *string `gorm:"column:surface_coating" json:"surface_coating,omitempty"`
	FeederCellID   *string `gorm:"column:feeder_cell_id" json:"feeder_cell_id,omitempty"`
	FeederCellType *string `gorm:"column:feeder_cell_type" json:"feeder_cell_type,omitempty"`

	PassageMethod *string `gorm:"column:passage_method" json:"passage_method,omitempty"`
	Enzymatically *string `gorm:"column:enzymatically" json:"enzymatically,omitempty"`
	EnzymeFree    *string `gorm:"column:enzyme_free" json:"enzyme_free,omitempty"`

	O2Concentration *int `gorm:"column:o2_concentration" json:"o2_concentration,omitempty"`
	CO2Concentration *int `gorm:"column:co2_concentration" json:"co2_concentration,omitempty"`

	PassageNumberBanked *string `gorm:"column:passage_number_banked" json:"passage_number_banked,omitempty"`
	NumberOfVialsBanked *string `gorm:"column:number_of_vials_banked" json:"number_of_vials_banked,omitempty"`

	// Extended tri-state values: yes, no, unknown or empty when unanswered.
	RockInhibitorUsedAtPassage string `gorm:"column:rock_inhibitor_used_at_passage" json:"rock_inhibitor_used_at_passage"`
	RockInhibitorUsedAtCryo    string `gorm:"column:rock_inhibitor_used_at_cryo" json:"rock_inhibitor_used_at_cryo"`
	RockInhibitorUsedAtThaw    string `gorm:"column:rock_inhibitor_used_at_thaw" json:"rock_inhibitor_used_at_thaw"`

	CultureMedium *string `gorm:"column:culture_medium" json:"culture_medium,omitempty"`
}

func (CelllineCultureConditions) TableName() string { return "cellline_culture_conditions" }

// CultureMediumOther holds the free-form medium description used when the
// registry medium is "other".
type CultureMediumOther struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CultureConditionsID uuid.UUID `gorm:"type:uuid;column:culture_conditions_id;not null;uniqueIndex" json:"culture_conditions_id"`

	Base               *string `gorm:"column:base" json:"base,omitempty"`
	ProteinSource      *string `gorm:"column:protein_source" json:"protein_source,omitempty"`
	SerumConcentration *int    `gorm:"column:serum_concentration" json:"serum_concentration,omitempty"`
}

func (CultureMediumOther) TableName() string { return "culture_medium_other" }

// CultureMediumSupplement is keyed by (culture conditions, supplement name)
// and reconciled against the registry supplement list on every import.
type CultureMediumSupplement struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CultureConditionsID uuid.UUID `gorm:"type:uuid;column:culture_conditions_id;not null;uniqueIndex:idx_culture_supplement,priority:1" json:"culture_conditions_id"`
	Supplement          string    `gorm:"column:supplement;not null;uniqueIndex:idx_culture_supplement,priority:2" json:"supplement"`

	Amount *string    `gorm:"column:amount" json:"amount,omitempty"`
	UnitID *uuid.UUID `gorm:"type:uuid;column:unit_id" json:"unit_id,omitempty"`
	Unit   *Unit      `gorm:"foreignKey:UnitID;references:ID" json:"unit,omitempty"`
}

func (CultureMediumSupplement) TableName() string { return "culture_medium_supplement" }
