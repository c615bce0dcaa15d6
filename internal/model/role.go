package model

type Role struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);not null;uniqueIndex:idx_role_name"` // READER / WRITER / ADMIN
}

func (Role) TableName() string {
	return "roles"
}
