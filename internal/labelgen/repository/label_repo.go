package repository

import (
	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"gorm.io/gorm"
)

type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) Create(label *entity.Label) error {
	return r.db.Create(label).Error
}

func (r *LabelRepository) GetByID(id uint) (*entity.Label, error) {
	var label entity.Label
	if err := r.db.Preload("Order").Preload("Workstation").First(&label, id).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// ListByOrder returns an order's labels in processing sequence:
// real rims before the inschiet rim, left side before right.
func (r *LabelRepository) ListByOrder(orderID uint) ([]entity.Label, error) {
	var labels []entity.Label
	err := r.db.Where("production_order_id = ?", orderID).
		Order("is_inschiet, rim_number, cut_side").
		Find(&labels).Error
	return labels, err
}

func (r *LabelRepository) Update(label *entity.Label) error {
	return r.db.Save(label).Error
}
