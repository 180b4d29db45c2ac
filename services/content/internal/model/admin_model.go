package model

import (
	"time"

	"gorm.io/gorm"
)

type AdminModel struct {
	ID           string     `gorm:"type:uuid;primary_key" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string     `gorm:"type:varchar(255)" json:"name"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         string     `gorm:"type:varchar(20);default:'admin'" json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (AdminModel) TableName() string { return "admins" }

func (a *AdminModel) BeforeCreate(tx *gorm.DB) error {
	newID(&a.ID)
	return nil
}

// All lists every content service model, in dependency order.
func All() []interface{} {
	return []interface{}{
		&NewsModel{},
		&EventModel{},
		&JobModel{},
		&BusinessModel{},
		&VideoModel{},
		&MagazineCollectionModel{},
		&MagazineModel{},
		&RadioFolderModel{},
		&RadioShowModel{},
		&AdminModel{},
	}
}
