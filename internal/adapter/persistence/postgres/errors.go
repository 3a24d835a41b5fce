package postgres

import (
	"errors"

	"insurance_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// translate maps driver constraint failures onto store errors. It relies on
// the connection being opened with gorm.Config{TranslateError: true}.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return interfaces.ErrForeignKeyViolation
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return interfaces.ErrEmailTaken
	}
	return err
}
