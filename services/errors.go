package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrConstraint covers unique-key and foreign-key violations at write time.
	ErrConstraint = errors.New("duplicate or invalid reference")
	ErrNotFound   = errors.New("record not found")
	// ErrCodeExhausted means every regenerated order code collided.
	ErrCodeExhausted = errors.New("could not allocate a unique order code")
)

// ValidationError rejects a submission wholesale and carries every message.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, " ")
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate entry")
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint")
}

// constraintError maps store-level constraint failures onto ErrConstraint
// and leaves everything else untouched.
func constraintError(err error) error {
	if isDuplicateKey(err) || isForeignKeyViolation(err) {
		return errors.Join(ErrConstraint, err)
	}
	return err
}
