package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an operation targets a nonexistent row. It is
// the only repository error callers are expected to branch on.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
