package persistent

import (
	"context"
	"strings"
	"time"

	"hello-madurai/services/content/internal/entity"
	"hello-madurai/services/content/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	m := ToAdminModel(admin)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*admin = *ToAdminEntity(m)
	return nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var m model.AdminModel
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&m).Error
	if err != nil {
		return nil, notFound(err)
	}
	return ToAdminEntity(&m), nil
}

func (r *adminRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.AdminModel{}).Where("id = ?", id).UpdateColumn("last_login_at", at).Error
}
