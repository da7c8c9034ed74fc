package entity

import (
	"math"
	"time"
)

// SheetsPerRim is the fixed rim size; total_rims = floor(sheets/1000)
// and the remainder becomes inschiet.
const SheetsPerRim = 1000

// ProductionOrder is one order pulled from SIRINE. The PO number is
// assigned externally and unique here; labels are materialized at
// registration and cascade-deleted with the order.
type ProductionOrder struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	PONumber       int64       `json:"po_number" gorm:"not null;uniqueIndex"`
	OBCNumber      string      `json:"obc_number" gorm:"size:50"`
	OrderType      OrderType   `json:"order_type" gorm:"size:16;not null;default:regular;index"`
	ProductType    string      `json:"product_type" gorm:"size:50;not null"`
	TotalSheets    int         `json:"total_sheets" gorm:"not null"`
	TotalRims      int         `json:"total_rims" gorm:"not null"`
	StartRim       int         `json:"start_rim" gorm:"not null;default:1"`
	EndRim         int         `json:"end_rim" gorm:"not null"`
	InschietSheets int         `json:"inschiet_sheets" gorm:"not null;default:0"`
	TeamID         *uint       `json:"team_id" gorm:"index"`
	Status         OrderStatus `json:"status" gorm:"size:16;not null;default:registered;index"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	Team   *Workstation `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Labels []Label      `json:"labels,omitempty" gorm:"foreignKey:ProductionOrderID;constraint:OnDelete:CASCADE"`
}

func (ProductionOrder) TableName() string {
	return "production_orders"
}

func (o *ProductionOrder) IsRegular() bool {
	return o.OrderType == OrderTypeRegular
}

func (o *ProductionOrder) IsMmea() bool {
	return o.OrderType == OrderTypeMmea
}

func (o *ProductionOrder) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// HasInschiet reports whether the order carries remainder sheets
// beyond its full rims.
func (o *ProductionOrder) HasInschiet() bool {
	return o.InschietSheets > 0
}

// ProgressPercent derives the completion percentage from label counts,
// round half up: 1 of 3 -> 33, 2 of 3 -> 67. Zero labels means zero
// progress, never a division error.
func ProgressPercent(completed, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
