package repository

import (
	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"gorm.io/gorm"
)

type WorkstationRepository struct {
	db *gorm.DB
}

func NewWorkstationRepository(db *gorm.DB) *WorkstationRepository {
	return &WorkstationRepository{db: db}
}

func (r *WorkstationRepository) Create(ws *entity.Workstation) error {
	return r.db.Create(ws).Error
}

func (r *WorkstationRepository) GetByID(id uint) (*entity.Workstation, error) {
	var ws entity.Workstation
	if err := r.db.First(&ws, id).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *WorkstationRepository) GetByName(name string) (*entity.Workstation, error) {
	var ws entity.Workstation
	if err := r.db.Where("name = ?", name).First(&ws).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

// List returns workstations ordered by name; activeOnly narrows to
// active ones (used for assignment dropdowns).
func (r *WorkstationRepository) List(activeOnly bool) ([]entity.Workstation, error) {
	query := r.db.Model(&entity.Workstation{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var stations []entity.Workstation
	err := query.Order("name").Find(&stations).Error
	return stations, err
}

func (r *WorkstationRepository) Update(ws *entity.Workstation) error {
	return r.db.Save(ws).Error
}

// HasUsers reports whether any user is still assigned here. Deletion
// is refused while this holds.
func (r *WorkstationRepository) HasUsers(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.User{}).Where("workstation_id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete removes the workstation after nulling out every reference to
// it. Users, orders and labels survive the deletion.
func (r *WorkstationRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.User{}).Where("workstation_id = ?", id).
			Update("workstation_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.ProductionOrder{}).Where("team_id = ?", id).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.Label{}).Where("workstation_id = ?", id).
			Update("workstation_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Workstation{}, id).Error
	})
}
