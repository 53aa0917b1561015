package types

import (
	"github.com/google/uuid"
)

// Attachment is a stored file plus the registry's opaque content
// fingerprint; the fingerprint decides replace-vs-keep on re-import.
type Attachment struct {
	Path string `gorm:"column:path" json:"path,omitempty"`
	Enc  string `gorm:"column:enc" json:"enc,omitempty"`
}

func (a Attachment) Empty() bool { return a.Path == "" && a.Enc == "" }

// CelllineIntegratingVector is the integrating reprogramming vector record,
// one-to-one with a cell line and mutually exclusive with the
// non-integrating record.
type CelllineIntegratingVector struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	VectorTypeID *uuid.UUID             `gorm:"type:uuid;column:vector_type_id" json:"vector_type_id,omitempty"`
	VectorType   *IntegratingVectorType `gorm:"foreignKey:VectorTypeID;references:ID" json:"vector_type,omitempty"`

	VirusID *uuid.UUID `gorm:"type:uuid;column:virus_id" json:"virus_id,omitempty"`
	Virus   *Virus     `gorm:"foreignKey:VirusID;references:ID" json:"virus,omitempty"`

	TransposonID *uuid.UUID  `gorm:"type:uuid;column:transposon_id" json:"transposon_id,omitempty"`
	Transposon   *Transposon `gorm:"foreignKey:TransposonID;references:ID" json:"transposon,omitempty"`

	Excisable                    bool `gorm:"column:excisable;not null;default:false" json:"excisable"`
	AbsenceReprogrammingVectors  bool `gorm:"column:absence_reprogramming_vectors;not null;default:false" json:"absence_reprogramming_vectors"`

	Silenced      string  `gorm:"column:silenced" json:"silenced"`
	Methods       *string `gorm:"column:methods" json:"methods,omitempty"`
	SilencedNotes *string `gorm:"column:silenced_notes" json:"silenced_notes,omitempty"`

	ExpressedSilencedFile Attachment `gorm:"embedded;embeddedPrefix:expressed_silenced_file_" json:"expressed_silenced_file"`
	VectorMapFile         Attachment `gorm:"embedded;embeddedPrefix:vector_map_file_" json:"vector_map_file"`

	Genes []*Molecule `gorm:"many2many:cellline_integrating_vector_gene" json:"genes,omitempty"`
}

func (CelllineIntegratingVector) TableName() string { return "cellline_integrating_vector" }

type CelllineNonIntegratingVector struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	VectorTypeID *uuid.UUID                `gorm:"type:uuid;column:vector_type_id" json:"vector_type_id,omitempty"`
	VectorType   *NonIntegratingVectorType `gorm:"foreignKey:VectorTypeID;references:ID" json:"vector_type,omitempty"`

	Detectable      string  `gorm:"column:detectable" json:"detectable"`
	Methods         *string `gorm:"column:methods" json:"methods,omitempty"`
	DetectableNotes *string `gorm:"column:detectable_notes" json:"detectable_notes,omitempty"`

	ExpressedSilencedFile Attachment `gorm:"embedded;embeddedPrefix:expressed_silenced_file_" json:"expressed_silenced_file"`
	VectorMapFile         Attachment `gorm:"embedded;embeddedPrefix:vector_map_file_" json:"vector_map_file"`

	Genes []*Molecule `gorm:"many2many:cellline_non_integrating_vector_gene" json:"genes,omitempty"`
}

func (CelllineNonIntegratingVector) TableName() string { return "cellline_non_integrating_vector" }

// CelllineReprogrammingFactors records vector-free reprogramming factors.
type CelllineReprogrammingFactors struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	Factors []*ReprogrammingFactor `gorm:"many2many:cellline_reprogramming_factor" json:"factors,omitempty"`
}

func (CelllineReprogrammingFactors) TableName() string { return "cellline_reprogramming_factors" }
