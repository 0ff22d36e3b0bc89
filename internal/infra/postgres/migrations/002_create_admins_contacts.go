package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createAdminAndContactTables creates the admins and contact_messages tables.
func createAdminAndContactTables() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "002_create_admins_contacts",
		Migrate: func(tx *gorm.DB) error {
			err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS admins (
					id UUID PRIMARY KEY,
					username VARCHAR(100) NOT NULL UNIQUE,
					password_hash VARCHAR(100) NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);
			`).Error
			if err != nil {
				return err
			}

			return tx.Exec(`
				CREATE TABLE IF NOT EXISTS contact_messages (
					id UUID PRIMARY KEY,
					name VARCHAR(200) NOT NULL,
					email VARCHAR(200) NOT NULL,
					area VARCHAR(100),
					message TEXT NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);
			`).Error
		},
		Rollback: func(tx *gorm.DB) error {
			if err := tx.Exec("DROP TABLE IF EXISTS contact_messages;").Error; err != nil {
				return err
			}

			return tx.Exec("DROP TABLE IF EXISTS admins;").Error
		},
	}
}
