package store

import (
	"github.com/mercadinho/auth-service/migrations"
)

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
