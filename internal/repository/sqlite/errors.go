package sqlite

import (
	"errors"

	"gorm.io/gorm"
)

// isNotFound reports a missing row from Take/First
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate reports a unique or primary key violation.
// Requires TranslateError on the gorm config.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKey reports a foreign key violation
func isForeignKey(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
