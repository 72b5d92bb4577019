package postgres

import (
	"strings"

	"outcome/internal/errors"

	"gorm.io/gorm"
)

// constraintViolation names the violated constraint class, or "" for other errors.
func constraintViolation(err error) string {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(err.Error(), "23505"):
		return "unique constraint violated"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return "foreign key constraint violated"
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return "check constraint violated"
	case isNotNullConstraintViolation(err):
		return "not null constraint violated"
	default:
		return ""
	}
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not-null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
