package types

import (
	"github.com/google/uuid"
)

const (
	MoleculeKindGene    = "gene"
	MoleculeKindProtein = "protein"
)

const (
	MoleculeCatalogEntrez  = "entrez"
	MoleculeCatalogEnsembl = "ensembl"
)

// Molecule is a catalog entity keyed by (name, kind).
type Molecule struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex:idx_molecule_name_kind,priority:1" json:"name"`
	Kind string    `gorm:"column:kind;not null;uniqueIndex:idx_molecule_name_kind,priority:2" json:"kind"`

	References []*MoleculeReference `gorm:"foreignKey:MoleculeID;references:ID" json:"references,omitempty"`
}

func (Molecule) TableName() string { return "molecule" }

// MoleculeReference is an external catalog cross-reference, at most one per
// (molecule, catalog).
type MoleculeReference struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MoleculeID uuid.UUID `gorm:"type:uuid;column:molecule_id;not null;uniqueIndex:idx_molecule_ref,priority:1" json:"molecule_id"`
	Catalog    string    `gorm:"column:catalog;not null;uniqueIndex:idx_molecule_ref,priority:2" json:"catalog"`
	CatalogID  string    `gorm:"column:catalog_id;not null" json:"catalog_id"`
}

func (MoleculeReference) TableName() string { return "molecule_reference" }
