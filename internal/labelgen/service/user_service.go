package service

import (
	"errors"
	"strings"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"gorm.io/gorm"
)

// UserService manages accounts. All mutations here are admin-only,
// enforced at the route level.
type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

type CreateUserRequest struct {
	NP            string `json:"np" binding:"required,max=5,alphanum"`
	Name          string `json:"name" binding:"max=100"`
	Password      string `json:"password"`
	UseDefault    bool   `json:"use_default"`
	Role          string `json:"role" binding:"required,oneof=admin operator"`
	WorkstationID *uint  `json:"workstation_id"`
	IsActive      *bool  `json:"is_active"`
}

type UpdateUserRequest struct {
	Name          string `json:"name" binding:"max=100"`
	Password      string `json:"password"`
	Role          string `json:"role" binding:"required,oneof=admin operator"`
	WorkstationID *uint  `json:"workstation_id"`
	IsActive      *bool  `json:"is_active"`
}

func (s *UserService) List(params repository.UserListParams) ([]entity.User, int64, error) {
	return s.users.List(params)
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create registers an account. NP is normalized to uppercase; with
// UseDefault the password becomes Peruri<NP>.
func (s *UserService) Create(req CreateUserRequest) (*entity.User, error) {
	np := strings.ToUpper(req.NP)

	password := req.Password
	if req.UseDefault || password == "" {
		password = DefaultPassword(np)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	user := &entity.User{
		NP:            np,
		Name:          req.Name,
		Password:      hash,
		Role:          entity.UserRole(req.Role),
		WorkstationID: req.WorkstationID,
		IsActive:      active,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// Update changes everything except the NP, which is immutable once
// assigned. An empty password leaves the stored hash untouched.
func (s *UserService) Update(id uint, req UpdateUserRequest) (*entity.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Role = entity.UserRole(req.Role)
	user.WorkstationID = req.WorkstationID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. Admins cannot delete themselves: the last
// admin locking everyone out is not a recoverable state.
func (s *UserService) Delete(id, actorID uint) error {
	if id == actorID {
		return ErrSelfDelete
	}
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.users.Delete(id)
}

// InspectedLabels lists the labels a user inspected, matched by NP.
func (s *UserService) InspectedLabels(np string) ([]entity.Label, error) {
	return s.users.InspectedLabels(np)
}
