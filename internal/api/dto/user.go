package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Email     string  `json:"email" binding:"required" validate:"email"`
	Password  string  `json:"password" binding:"required" validate:"min=6,max=20"`
	FirstName *string `json:"first_name" validate:"omitempty,max=30"`
	LastName  *string `json:"last_name" validate:"omitempty,max=30"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required"`
}

// TokenDTO 登录成功后签发的令牌
type TokenDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

// UserDTO 用户
type UserDTO struct {
	UserID    *uint64    `json:"user_id,omitempty"`
	Email     *string    `json:"email,omitempty"`
	FirstName *string    `json:"first_name,omitempty" validate:"omitempty,max=30"`
	LastName  *string    `json:"last_name,omitempty" validate:"omitempty,max=30"`
	Roles     []string   `json:"roles,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ProfileDTO 用户画像，Interests 为兴趣标签完整对象
type ProfileDTO struct {
	UserID    uint64    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Interests []*TagDTO `json:"interests"`
}

// UpdateInterestsDTO 整组覆盖兴趣标签
type UpdateInterestsDTO struct {
	TagIDs []uint64 `json:"tag_ids" binding:"required" validate:"max=50"`
}

// ChangeRolesDTO 管理员调整用户角色
type ChangeRolesDTO struct {
	Roles []string `json:"roles" binding:"required" validate:"min=1"`
}
