package types

import (
	"github.com/google/uuid"
)

// Undifferentiated morphology marker families. Imune, RT-PCR and FACS share
// the same shape: a one-to-one marker record plus per-molecule result rows
// keyed by (marker, molecule name).

type MarkerImune struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	PassageNumber *string `gorm:"column:passage_number" json:"passage_number,omitempty"`

	Molecules []*MarkerImuneMolecule `gorm:"foreignKey:MarkerID;references:ID" json:"molecules,omitempty"`
}

func (MarkerImune) TableName() string { return "marker_imune" }

type MarkerImuneMolecule struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MarkerID uuid.UUID `gorm:"type:uuid;column:marker_id;not null;uniqueIndex:idx_marker_imune_molecule,priority:1" json:"marker_id"`
	Molecule string    `gorm:"column:molecule;not null;uniqueIndex:idx_marker_imune_molecule,priority:2" json:"molecule"`
	Result   string    `gorm:"column:result" json:"result"`
}

func (MarkerImuneMolecule) TableName() string { return "marker_imune_molecule" }

type MarkerRtPcr struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	PassageNumber *string `gorm:"column:passage_number" json:"passage_number,omitempty"`

	Molecules []*MarkerRtPcrMolecule `gorm:"foreignKey:MarkerID;references:ID" json:"molecules,omitempty"`
}

func (MarkerRtPcr) TableName() string { return "marker_rt_pcr" }

type MarkerRtPcrMolecule struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MarkerID uuid.UUID `gorm:"type:uuid;column:marker_id;not null;uniqueIndex:idx_marker_rt_pcr_molecule,priority:1" json:"marker_id"`
	Molecule string    `gorm:"column:molecule;not null;uniqueIndex:idx_marker_rt_pcr_molecule,priority:2" json:"molecule"`
	Result   string    `gorm:"column:result" json:"result"`
}

func (MarkerRtPcrMolecule) TableName() string { return "marker_rt_pcr_molecule" }

type MarkerFacs struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	PassageNumber *string `gorm:"column:passage_number" json:"passage_number,omitempty"`

	Molecules []*MarkerFacsMolecule `gorm:"foreignKey:MarkerID;references:ID" json:"molecules,omitempty"`
}

func (MarkerFacs) TableName() string { return "marker_facs" }

type MarkerFacsMolecule struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MarkerID uuid.UUID `gorm:"type:uuid;column:marker_id;not null;uniqueIndex:idx_marker_facs_molecule,priority:1" json:"marker_id"`
	Molecule string    `gorm:"column:molecule;not null;uniqueIndex:idx_marker_facs_molecule,priority:2" json:"molecule"`
	Result   string    `gorm:"column:result" json:"result"`
}

func (MarkerFacsMolecule) TableName() string { return "marker_facs_molecule" }

// MarkerMorphology is deleted when the registry stops reporting any of its
// driving fields.
type MarkerMorphology struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	PassageNumber *string `gorm:"column:passage_number" json:"passage_number,omitempty"`
	Description   *string `gorm:"column:description" json:"description,omitempty"`
	DataURL       *string `gorm:"column:data_url" json:"data_url,omitempty"`
}

func (MarkerMorphology) TableName() string { return "marker_morphology" }

type MarkerExpressionProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	Method          *string `gorm:"column:method" json:"method,omitempty"`
	PassageNumber   *string `gorm:"column:passage_number" json:"passage_number,omitempty"`
	DataURL         *string `gorm:"column:data_url" json:"data_url,omitempty"`
	UploadedDataURL *string `gorm:"column:uploaded_data_url" json:"uploaded_data_url,omitempty"`

	Molecules []*MarkerExpressionProfileMolecule `gorm:"foreignKey:MarkerID;references:ID" json:"molecules,omitempty"`
}

func (MarkerExpressionProfile) TableName() string { return "marker_expression_profile" }

type MarkerExpressionProfileMolecule struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MarkerID uuid.UUID `gorm:"type:uuid;column:marker_id;not null;uniqueIndex:idx_marker_exprof_molecule,priority:1" json:"marker_id"`
	Molecule string    `gorm:"column:molecule;not null;uniqueIndex:idx_marker_exprof_molecule,priority:2" json:"molecule"`
	Result   string    `gorm:"column:result" json:"result"`
}

func (MarkerExpressionProfileMolecule) TableName() string { return "marker_expression_profile_molecule" }
