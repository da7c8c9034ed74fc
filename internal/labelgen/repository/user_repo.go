package repository

import (
	"strings"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UserListParams filters the user listing. Search matches on NP,
// Status is "active"/"inactive".
type UserListParams struct {
	Search string
	Role   string
	Status string
	Page   int
	Size   int
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.Preload("Workstation").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByNP looks up a user by employee number, case-insensitively.
func (r *UserRepository) GetByNP(np string) (*entity.User, error) {
	var user entity.User
	if err := r.db.Preload("Workstation").Where("np = ?", strings.ToUpper(np)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(params UserListParams) ([]entity.User, int64, error) {
	query := r.db.Model(&entity.User{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("np LIKE ? OR name ILIKE ?", strings.ToUpper(pattern), pattern)
	}
	if params.Role != "" {
		query = query.Where("role = ?", params.Role)
	}
	if params.Status != "" {
		query = query.Where("is_active = ?", params.Status == "active")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	size := params.Size
	if size < 1 {
		size = 15
	}

	var users []entity.User
	err := query.Preload("Workstation").
		Order("np").
		Offset((page - 1) * size).
		Limit(size).
		Find(&users).Error
	return users, total, err
}

func (r *UserRepository) Update(user *entity.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.db.Delete(&entity.User{}, id).Error
}

// InspectedLabels returns labels this user inspected as primary
// inspector. The association is by NP string match, not a foreign key:
// labels outlive user accounts.
func (r *UserRepository) InspectedLabels(np string) ([]entity.Label, error) {
	var labels []entity.Label
	err := r.db.Where("inspector_np = ?", strings.ToUpper(np)).
		Order("finished_at DESC NULLS LAST, started_at DESC NULLS LAST").
		Find(&labels).Error
	return labels, err
}
