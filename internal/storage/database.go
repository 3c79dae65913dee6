package storage

import (
	"github.com/halewood/trial-by-combat/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Keep the schema updated via AutoMigrate; removing the DB file is
	// the reset path during development.
	if err := db.AutoMigrate(&game.Match{}, &game.Fighter{}, &game.Profile{}); err != nil {
		return nil, err
	}
	return db, nil
}
