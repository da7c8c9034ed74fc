package repository

import (
	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type OrderListParams struct {
	Type   string
	Status string
	TeamID uint
	Page   int
	Size   int
}

// Create persists the order together with its materialized labels in
// one transaction.
func (r *OrderRepository) Create(order *entity.ProductionOrder) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) GetByID(id uint) (*entity.ProductionOrder, error) {
	var order entity.ProductionOrder
	if err := r.db.Preload("Team").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetByPONumber(poNumber int64) (*entity.ProductionOrder, error) {
	var order entity.ProductionOrder
	if err := r.db.Preload("Team").Where("po_number = ?", poNumber).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) List(params OrderListParams) ([]entity.ProductionOrder, int64, error) {
	query := r.db.Model(&entity.ProductionOrder{})

	if params.Type != "" {
		query = query.Where("order_type = ?", params.Type)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.TeamID != 0 {
		query = query.Where("team_id = ?", params.TeamID)
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
		size = 20
	}

	var orders []entity.ProductionOrder
	err := query.Preload("Team").
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) Update(order *entity.ProductionOrder) error {
	return r.db.Save(order).Error
}

// Delete removes the order and all its labels.
func (r *OrderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("production_order_id = ?", id).Delete(&entity.Label{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.ProductionOrder{}, id).Error
	})
}

// LabelCounts reads the label totals that feed the derived progress
// percentage. Computed fresh on every call, never cached.
func (r *OrderRepository) LabelCounts(orderID uint) (total, completed int64, err error) {
	if err = r.db.Model(&entity.Label{}).
		Where("production_order_id = ?", orderID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = r.db.Model(&entity.Label{}).
		Where("production_order_id = ? AND finished_at IS NOT NULL", orderID).
		Count(&completed).Error
	return total, completed, err
}
