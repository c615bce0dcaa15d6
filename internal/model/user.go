package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Email     string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_email"`
	Password  *string `gorm:"type:varchar(255)"`
	FirstName *string `gorm:"type:varchar(100)"`
	LastName  *string `gorm:"type:varchar(100)"`
	IsBan     bool    `gorm:"type:tinyint(1);default:0"`
	IsDelete  bool    `gorm:"type:tinyint(1);default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserRoles []UserRole `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
