package controller

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation matches Postgres unique_violation through GORM's
// error translation, plus a string fallback for the simple protocol.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
