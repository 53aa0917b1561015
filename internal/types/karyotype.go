package types

import (
	"github.com/google/uuid"
)

type CelllineKaryotype struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	Karyotype       *string `gorm:"column:karyotype" json:"karyotype,omitempty"`
	KaryotypeMethod *string `gorm:"column:karyotype_method" json:"karyotype_method,omitempty"`
	PassageNumber   *string `gorm:"column:passage_number" json:"passage_number,omitempty"`
}

func (CelllineKaryotype) TableName() string { return "cellline_karyotype" }

// CelllineHlaTyping holds one row per HLA locus (A, B, C, DP, DM, DOA, DQ,
// DR), keyed by (cell line, locus).
type CelllineHlaTyping struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex:idx_hla_typing,priority:1" json:"cell_line_id"`
	Hla        string    `gorm:"column:hla;not null;uniqueIndex:idx_hla_typing,priority:2" json:"hla"`

	HlaClass   string  `gorm:"column:hla_class" json:"hla_class"`
	HlaAllele1 *string `gorm:"column:hla_allele_1" json:"hla_allele_1,omitempty"`
	HlaAllele2 *string `gorm:"column:hla_allele_2" json:"hla_allele_2,omitempty"`
}

func (CelllineHlaTyping) TableName() string { return "cellline_hla_typing" }

// CelllineStrFingerprinting is keyed by (cell line, locus).
type CelllineStrFingerprinting struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex:idx_str_fingerprinting,priority:1" json:"cell_line_id"`
	Locus      string    `gorm:"column:locus;not null;uniqueIndex:idx_str_fingerprinting,priority:2" json:"locus"`

	Allele1 string `gorm:"column:allele1" json:"allele1"`
	Allele2 string `gorm:"column:allele2" json:"allele2"`
}

func (CelllineStrFingerprinting) TableName() string { return "cellline_str_fingerprinting" }

type CelllineGenomeAnalysis struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	Data *string `gorm:"column:data" json:"data,omitempty"`
	Link *string `gorm:"column:link" json:"link,omitempty"`
}

func (CelllineGenomeAnalysis) TableName() string { return "cellline_genome_analysis" }
