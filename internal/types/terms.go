package types

import (
	"time"

	"github.com/google/uuid"
)

// Controlled term catalogs. Each row is deduplicated by its name and is
// never deleted by the importer.

type AgeRange struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (AgeRange) TableName() string { return "age_range" }

type Gender struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (Gender) TableName() string { return "gender" }

type Country struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (Country) TableName() string { return "country" }

type CellType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Purl string    `gorm:"column:purl" json:"purl"`
}

func (CellType) TableName() string { return "cell_type" }

type Virus struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (Virus) TableName() string { return "virus" }

type Transposon struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (Transposon) TableName() string { return "transposon" }

type Unit struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (Unit) TableName() string { return "unit" }

type IntegratingVectorType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (IntegratingVectorType) TableName() string { return "integrating_vector_type" }

type NonIntegratingVectorType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (NonIntegratingVectorType) TableName() string { return "non_integrating_vector_type" }

type ReprogrammingFactor struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (ReprogrammingFactor) TableName() string { return "reprogramming_factor" }

type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Organization) TableName() string { return "organization" }

// OrgRole records organization roles other than generator/owner, e.g.
// "Distributor".
type OrgRole struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
}

func (OrgRole) TableName() string { return "org_role" }

// CelllineOrganization links a cell line to an organization with a
// non-provider role.
type CelllineOrganization struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID     uuid.UUID     `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex:idx_cellline_org,priority:1" json:"cell_line_id"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;column:organization_id;not null;uniqueIndex:idx_cellline_org,priority:2" json:"organization_id"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID;references:ID" json:"organization,omitempty"`
	RoleID         uuid.UUID     `gorm:"type:uuid;column:role_id;not null;uniqueIndex:idx_cellline_org,priority:3" json:"role_id"`
	Role           *OrgRole      `gorm:"foreignKey:RoleID;references:ID" json:"role,omitempty"`
}

func (CelllineOrganization) TableName() string { return "cellline_organization" }
