package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Low-level failures surfaced by the adapter. The service layer owns the
// translation into domain error kinds; nothing here is user-visible.
var (
	ErrNotFound        = errors.New("store: record not found")
	ErrDuplicateKey    = errors.New("store: duplicate key")
	ErrUniqueViolation = errors.New("store: unique constraint violation")
)

// translate maps a raw GORM/driver error onto the adapter's sentinel errors.
// Drivers with TranslateError enabled report gorm.ErrDuplicatedKey; the
// string match covers SQLite builds that predate error translation.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUniqueViolation
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value") {
		return ErrUniqueViolation
	}
	return err
}
