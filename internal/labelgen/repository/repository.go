package repository

import "gorm.io/gorm"

// Repositories bundles all labelgen repositories.
type Repositories struct {
	User        *UserRepository
	Workstation *WorkstationRepository
	Order       *OrderRepository
	Label       *LabelRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Workstation: NewWorkstationRepository(db),
		Order:       NewOrderRepository(db),
		Label:       NewLabelRepository(db),
	}
}
