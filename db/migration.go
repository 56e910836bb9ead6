package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "it-requests-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	for _, model := range dbmodels.AllModels() {
		if err := DB.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "migration of %T failed", model)
		}
	}
	log.Info("migrations finished")
	return nil
}
