package postgres

import (
	"credgate/internal/errors"
	"credgate/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables owned by credgate. Columns are only
// ever added, never dropped.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.UserModel{}, &model.AuthEventModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
