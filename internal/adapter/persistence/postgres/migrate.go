package postgres

import "gorm.io/gorm"

// Migrate creates the tables, their foreign keys and the case-insensitive
// email index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&customerModel{}, &policyModel{}, &claimModel{}); err != nil {
		return err
	}
	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email_lower ON customers (LOWER(email))").Error
}
