package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Donor has a lifecycle independent from any cell line; it is created and
// updated by the donor parser and looked up by the cell line parser.
type Donor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BiosamplesID string    `gorm:"column:biosamples_id;not null;uniqueIndex" json:"biosamples_id"`

	GenderID *uuid.UUID `gorm:"type:uuid;column:gender_id" json:"gender_id,omitempty"`
	Gender   *Gender    `gorm:"foreignKey:GenderID;references:ID" json:"gender,omitempty"`

	ProviderDonorIDs datatypes.JSON `gorm:"column:provider_donor_ids" json:"provider_donor_ids,omitempty"`
	Ethnicity        *string        `gorm:"column:ethnicity" json:"ethnicity,omitempty"`

	Diseases []*DonorDisease `gorm:"foreignKey:DonorID;references:ID" json:"diseases,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Donor) TableName() string { return "donor" }
