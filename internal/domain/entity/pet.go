package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Pet struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string          `gorm:"type:varchar(100);not null;index" json:"name"`
	Type      string          `gorm:"type:varchar(100)" json:"type,omitempty"`
	Breed     string          `gorm:"type:varchar(100)" json:"breed,omitempty"`
	Age       int             `gorm:"default:0" json:"age"`
	Gender    string          `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Weight    decimal.Decimal `gorm:"type:decimal(6,2)" json:"weight"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`
	IsActive  bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner Customer `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}
