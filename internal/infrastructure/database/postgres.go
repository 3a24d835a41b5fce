package database

import (
	"insurance_backoffice/internal/infrastructure/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectPostgres opens a gorm connection. Driver errors are translated so
// constraint violations surface as gorm.ErrForeignKeyViolated and
// gorm.ErrDuplicatedKey.
func ConnectPostgres(c config.Postgres) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(c.ConnString()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}
