package entity

import (
	"time"

	"github.com/google/uuid"
)

type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Experience     int       `gorm:"default:0" json:"experience"`
	Education      string    `gorm:"type:varchar(255)" json:"education,omitempty"`
	Available      bool      `gorm:"not null;default:true;index" json:"available"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
