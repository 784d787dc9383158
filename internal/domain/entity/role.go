package entity

// Role IDs are seeded by migration and never change at runtime
const (
	RoleIDAdmin  = 1
	RoleIDClient = 2
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type Role struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

// RoleName maps a role ID to its canonical name
func RoleName(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return RoleAdmin
	default:
		return RoleClient
	}
}
