package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Constraint violations surface as one of these sentinels so handlers
// can pick a status code without knowing which driver is underneath.
var (
	// ErrDuplicate covers both uniqueness rules: a second college with
	// the same (name, state) pair, or a second extension row for a
	// college that already has one.
	ErrDuplicate = errors.New("record already exists")

	// ErrMissingCollege is returned when an extension row references a
	// college id that does not exist.
	ErrMissingCollege = errors.New("college does not exist")

	// ErrNotFound is returned by lookups that matched nothing.
	ErrNotFound = errors.New("record not found")
)

// Translate maps driver errors onto the sentinels above. GORM already
// translates pgx and sqlite constraint errors when TranslateError is
// on; the pq and message checks cover the raw database/sql path.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrMissingCollege
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return ErrDuplicate
		case "23503": // foreign_key_violation
			return ErrMissingCollege
		}
	}

	// Drivers that translate neither way still name the constraint in
	// the message.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "duplicate key value"):
		return ErrDuplicate
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"):
		return ErrMissingCollege
	}

	return err
}
