package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this package owns. The row
// models are private, so schema management lives here rather than in cmd.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identityModel{},
		&customerModel{},
		&technicianModel{},
		&adminModel{},
		&addressModel{},
		&bookingModel{},
		&paymentModel{},
		&chatContactModel{},
		&chatMessageModel{},
		&applicationModel{},
		&serviceModel{},
	)
}
