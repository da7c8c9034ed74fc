package entity

import "gorm.io/gorm"

// AutoMigrate migrates all labelgen tables, parents before children.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Workstation{},
		&User{},
		&ProductionOrder{},
		&Label{},
	)
}
