package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/redis"
	"Wayfarer/internal/pkg/security"
	"Wayfarer/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUserInfo(ctx context.Context, id uint64, userDTO *dto.UserDTO) error
	ChangeRoles(ctx context.Context, id uint64, rolesDTO *dto.ChangeRolesDTO) error
	BanUser(ctx context.Context, id uint64) error
	UnBanUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	roleRepo repository.RoleRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserEmailExist
	}

	user := &model.User{}
	err = copier.Copy(user, regDTO)
	if err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}
	user.Password = &passwordHash

	// 新用户默认 READER 角色
	readerRole, err := s.roleRepo.GetRoleByName(ctx, consts.RoleReader)
	if err != nil {
		return err
	}
	if readerRole == nil {
		return ErrRoleNotFound
	}

	roles := []*model.UserRole{{RoleID: readerRole.ID}}
	return s.userRepo.CreateUser(ctx, user, roles)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, credDTO.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDelete {
		return nil, ErrUserNotFound
	}
	if user.IsBan {
		return nil, ErrUserBan
	}
	if user.Password == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(credDTO.Password, *user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	roleNames := roleNamesOf(user)
	token, err := security.GenerateToken(user.ID, roleNames)
	if err != nil {
		return nil, err
	}

	userDTO, err := s.toUserDTO(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token, User: userDTO}, nil
}

// Logout 将 token 签名写入黑名单，过期时间与 token 寿命一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDelete {
		return nil, ErrUserNotFound
	}
	return s.toUserDTO(user)
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, userDTO *dto.UserDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	update := &model.User{ID: id}
	if userDTO.FirstName != nil {
		update.FirstName = userDTO.FirstName
	}
	if userDTO.LastName != nil {
		update.LastName = userDTO.LastName
	}
	return s.userRepo.UpdateUser(ctx, update)
}

// ChangeRoles 管理员整组覆盖用户角色
func (s *UserServiceImpl) ChangeRoles(ctx context.Context, id uint64, rolesDTO *dto.ChangeRolesDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	roleIDs := make([]uint64, 0, len(rolesDTO.Roles))
	for _, name := range rolesDTO.Roles {
		role, err := s.roleRepo.GetRoleByName(ctx, name)
		if err != nil {
			return err
		}
		if role == nil {
			return ErrRoleNotFound
		}
		roleIDs = append(roleIDs, role.ID)
	}
	return s.roleRepo.ReplaceUserRoles(ctx, id, roleIDs)
}

func (s *UserServiceImpl) BanUser(ctx context.Context, id uint64) error {
	return s.setBan(ctx, id, true)
}

func (s *UserServiceImpl) UnBanUser(ctx context.Context, id uint64) error {
	return s.setBan(ctx, id, false)
}

func (s *UserServiceImpl) setBan(ctx context.Context, id uint64, ban bool) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	user.IsBan = ban
	return s.userRepo.UpdateUser(ctx, user)
}

func (s *UserServiceImpl) toUserDTO(user *model.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.UserID = &user.ID
	userDTO.Roles = roleNamesOf(user)
	return userDTO, nil
}

func roleNamesOf(user *model.User) []string {
	names := make([]string, 0, len(user.UserRoles))
	for _, ur := range user.UserRoles {
		names = append(names, ur.Role.Name)
	}
	return names
}
