package mysql

import (
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Open returns a connected GORM DB handle. TranslateError is enabled so
// duplicate-key violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(withFoundRows(dsn)), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// withFoundRows forces the driver to report rows matched rather than rows
// changed. Without it an UPDATE that resubmits identical values counts zero
// affected rows, and the repositories would misread an existing row as
// missing.
func withFoundRows(dsn string) string {
	if strings.Contains(dsn, "clientFoundRows=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "clientFoundRows=true"
}

// Migrate creates or updates the relational schema for all portal tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userRecord{},
		&accountRequestRecord{},
		&businessRecord{},
		&messageRecord{},
		&competitionRecord{},
		&entryRecord{},
	)
}
