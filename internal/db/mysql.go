package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance. The DSN must enable
// parseTime so timestamp columns scan into time.Time. TranslateError maps
// driver errors to gorm sentinels, notably ErrDuplicatedKey on unique
// index violations.
func NewMySQL(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return conn, nil
}
