package entity

import (
	"time"
)

// Workstation groups operators, orders and labels into one production
// team. Deleting a workstation nulls out references, it never cascades.
type Workstation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Users  []User            `json:"users,omitempty" gorm:"foreignKey:WorkstationID"`
	Orders []ProductionOrder `json:"orders,omitempty" gorm:"foreignKey:TeamID"`
	Labels []Label           `json:"labels,omitempty" gorm:"foreignKey:WorkstationID"`
}

func (Workstation) TableName() string {
	return "workstations"
}
