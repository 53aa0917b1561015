package types

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CelllineGeneticModification is the umbrella record; the per-type
// sub-records below are created only for the modification types the
// registry lists.
type CelllineGeneticModification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	Modified *bool          `gorm:"column:modified" json:"modified,omitempty"`
	Types    datatypes.JSON `gorm:"column:types" json:"types,omitempty"`
}

func (CelllineGeneticModification) TableName() string { return "cellline_genetic_modification" }

type GeneticModificationTransgeneExpression struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	DeliveryMethod *string `gorm:"column:delivery_method" json:"delivery_method,omitempty"`

	VirusID *uuid.UUID `gorm:"type:uuid;column:virus_id" json:"virus_id,omitempty"`
	Virus   *Virus     `gorm:"foreignKey:VirusID;references:ID" json:"virus,omitempty"`

	TransposonID *uuid.UUID  `gorm:"type:uuid;column:transposon_id" json:"transposon_id,omitempty"`
	Transposon   *Transposon `gorm:"foreignKey:TransposonID;references:ID" json:"transposon,omitempty"`

	Genes []*Molecule `gorm:"many2many:genetic_modification_transgene_expression_gene" json:"genes,omitempty"`
}

func (GeneticModificationTransgeneExpression) TableName() string {
	return "genetic_modification_transgene_expression"
}

type GeneticModificationGeneKnockOut struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	DeliveryMethod *string `gorm:"column:delivery_method" json:"delivery_method,omitempty"`

	VirusID *uuid.UUID `gorm:"type:uuid;column:virus_id" json:"virus_id,omitempty"`
	Virus   *Virus     `gorm:"foreignKey:VirusID;references:ID" json:"virus,omitempty"`

	TransposonID *uuid.UUID  `gorm:"type:uuid;column:transposon_id" json:"transposon_id,omitempty"`
	Transposon   *Transposon `gorm:"foreignKey:TransposonID;references:ID" json:"transposon,omitempty"`

	TargetGenes []*Molecule `gorm:"many2many:genetic_modification_gene_knock_out_target_gene" json:"target_genes,omitempty"`
}

func (GeneticModificationGeneKnockOut) TableName() string {
	return "genetic_modification_gene_knock_out"
}

type GeneticModificationGeneKnockIn struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	DeliveryMethod *string `gorm:"column:delivery_method" json:"delivery_method,omitempty"`

	VirusID *uuid.UUID `gorm:"type:uuid;column:virus_id" json:"virus_id,omitempty"`
	Virus   *Virus     `gorm:"foreignKey:VirusID;references:ID" json:"virus,omitempty"`

	TransposonID *uuid.UUID  `gorm:"type:uuid;column:transposon_id" json:"transposon_id,omitempty"`
	Transposon   *Transposon `gorm:"foreignKey:TransposonID;references:ID" json:"transposon,omitempty"`

	TargetGenes []*Molecule `gorm:"many2many:genetic_modification_gene_knock_in_target_gene" json:"target_genes,omitempty"`
	Transgenes  []*Molecule `gorm:"many2many:genetic_modification_gene_knock_in_transgene" json:"transgenes,omitempty"`
}

func (GeneticModificationGeneKnockIn) TableName() string {
	return "genetic_modification_gene_knock_in"
}

type GeneticModificationIsogenic struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	ChangeType       *string `gorm:"column:change_type" json:"change_type,omitempty"`
	ModifiedSequence *string `gorm:"column:modified_sequence" json:"modified_sequence,omitempty"`

	TargetLocus []*Molecule `gorm:"many2many:genetic_modification_isogenic_target_locus" json:"target_locus,omitempty"`
}

func (GeneticModificationIsogenic) TableName() string { return "genetic_modification_isogenic" }
