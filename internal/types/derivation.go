package types

import (
	"github.com/google/uuid"
)

type CelllineDerivation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	PrimaryCellTypeID *uuid.UUID `gorm:"type:uuid;column:primary_cell_type_id" json:"primary_cell_type_id,omitempty"`
	PrimaryCellType   *CellType  `gorm:"foreignKey:PrimaryCellTypeID;references:ID" json:"primary_cell_type,omitempty"`

	PrimaryCellTypeNotNormalised *string `gorm:"column:primary_cell_type_not_normalised" json:"primary_cell_type_not_normalised,omitempty"`
	PrimaryCellline              *string `gorm:"column:primary_cellline" json:"primary_cellline,omitempty"`
	PrimaryCelllineVendor        *string `gorm:"column:primary_cellline_vendor" json:"primary_cellline_vendor,omitempty"`
	PrimaryCellDevelopmentalStage string `gorm:"column:primary_cell_developmental_stage" json:"primary_cell_developmental_stage"`

	TissueProcurementLocation  *string `gorm:"column:tissue_procurement_location" json:"tissue_procurement_location,omitempty"`
	TissueCollectionDate       *string `gorm:"column:tissue_collection_date" json:"tissue_collection_date,omitempty"`
	ReprogrammingPassageNumber *string `gorm:"column:reprogramming_passage_number" json:"reprogramming_passage_number,omitempty"`
	SelectionCriteriaForClones *string `gorm:"column:selection_criteria_for_clones" json:"selection_criteria_for_clones,omitempty"`

	XenoFreeConditions       bool `gorm:"column:xeno_free_conditions;not null;default:false" json:"xeno_free_conditions"`
	DerivedUnderGmp          bool `gorm:"column:derived_under_gmp;not null;default:false" json:"derived_under_gmp"`
	AvailableAsClinicalGrade bool `gorm:"column:available_as_clinical_grade;not null;default:false" json:"available_as_clinical_grade"`
}

func (CelllineDerivation) TableName() string { return "cellline_derivation" }
