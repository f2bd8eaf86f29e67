package repositories

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup by key matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// translate maps GORM errors onto the repository sentinels and adds context.
func translate(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Wrapf(ErrNotFound, format, args...)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Wrapf(ErrDuplicateKey, format, args...)
	}
	return errors.Wrapf(err, format, args...)
}

// containsPattern builds a LIKE pattern for a case-insensitive substring match
// against a LOWER()ed column.
func containsPattern(search string) string {
	s := strings.ToLower(strings.TrimSpace(search))
	s = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`).Replace(s)
	return "%" + s + "%"
}

// searchScope filters column by the page's search term, if any.
func searchScope(column, search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(search) == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ? ESCAPE '!'", containsPattern(search))
	}
}
