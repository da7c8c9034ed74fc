package entity

import (
	"time"
)

// User is an application account. The NP (employee number) doubles as
// the login identifier and the inspector attribution key on labels;
// it is stored uppercase.
type User struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	NP            string       `json:"np" gorm:"size:5;not null;uniqueIndex"`
	Name          string       `json:"name" gorm:"size:100"`
	Password      string       `json:"-" gorm:"size:255;not null"`
	Role          UserRole     `json:"role" gorm:"size:16;not null;default:operator;index"`
	WorkstationID *uint        `json:"workstation_id" gorm:"index"`
	IsActive      bool         `json:"is_active" gorm:"not null;default:true;index"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Workstation   *Workstation `json:"workstation,omitempty" gorm:"foreignKey:WorkstationID;constraint:OnDelete:SET NULL"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

func (u *User) IsOperator() bool {
	return u.Role == RoleOperator
}
