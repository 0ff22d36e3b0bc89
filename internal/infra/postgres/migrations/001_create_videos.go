package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createVideosTable creates the videos table with its indexes.
func createVideosTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "001_create_videos",
		Migrate: func(tx *gorm.DB) error {
			err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS videos (
					id UUID PRIMARY KEY,
					title VARCHAR(500) NOT NULL,
					youtube_id VARCHAR(50) NOT NULL,
					embed_url VARCHAR(500) NOT NULL,
					day INTEGER NOT NULL,
					date VARCHAR(30) NOT NULL,
					reflection TEXT NOT NULL,
					excerpt TEXT,
					tags TEXT[],

					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);
			`).Error
			if err != nil {
				return err
			}

			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_videos_day ON videos(day DESC);",
				// GIN index backs tag containment filtering
				"CREATE INDEX IF NOT EXISTS idx_videos_tags ON videos USING GIN(tags);",
			}

			for _, idx := range indexes {
				if err := tx.Exec(idx).Error; err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("DROP TABLE IF EXISTS videos;").Error
		},
	}
}
