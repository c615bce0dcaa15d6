package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type RoleRepo interface {
	GetRoleByName(ctx context.Context, name string) (*model.Role, error)
	GetAllRoles(ctx context.Context) ([]*model.Role, error)
	ReplaceUserRoles(ctx context.Context, userID uint64, roleIDs []uint64) error
}

type roleRepoImpl struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepo {
	return &roleRepoImpl{db: db}
}

func (r *roleRepoImpl) GetRoleByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepoImpl) GetAllRoles(ctx context.Context) ([]*model.Role, error) {
	var roles []*model.Role
	err := r.db.WithContext(ctx).Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// ReplaceUserRoles 整组覆盖用户角色
func (r *roleRepoImpl) ReplaceUserRoles(ctx context.Context, userID uint64, roleIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.UserRole{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		userRoles := make([]*model.UserRole, 0, len(roleIDs))
		for _, roleID := range roleIDs {
			userRoles = append(userRoles, &model.UserRole{UserID: userID, RoleID: roleID})
		}
		if len(userRoles) == 0 {
			return nil
		}
		return tx.Create(userRoles).Error
	})
}
