package db

import (
	log "github.com/sirupsen/logrus"
	"it-requests-backend/models"
	dbmodels "it-requests-backend/models/db"
)

func InitPreload() {
	fillStatuses()
	fillRequestTypes()
}

// fillStatuses keeps the status dictionary in sync with the lifecycle
// enum: the dictionary carries display names, the enum carries semantics.
func fillStatuses() {
	statuses := []dbmodels.Status{
		{Value: models.RequestStatusRequested, DisplayOrder: 1},
		{Value: models.RequestStatusManagerApproved, DisplayOrder: 2, IsApproval: true},
		{Value: models.RequestStatusDirectorApproved, DisplayOrder: 3, IsApproval: true},
		{Value: models.RequestStatusITManagerApproved, DisplayOrder: 4, IsApproval: true},
		{Value: models.RequestStatusApproved, DisplayOrder: 5, IsApproval: true},
		{Value: models.RequestStatusInProgress, DisplayOrder: 6},
		{Value: models.RequestStatusComplete, DisplayOrder: 7},
		{Value: models.RequestStatusRejected, DisplayOrder: 8},
		{Value: models.RequestStatusCancelled, DisplayOrder: 9},
	}
	for _, status := range statuses {
		var count int64
		DB.Model(&dbmodels.Status{}).Where("value = ?", status.Value).Count(&count)
		if count > 0 {
			continue
		}
		status.Name = status.Value.ToHuman()
		status.Enabled = true
		if err := DB.Create(&status).Error; err != nil {
			log.WithError(err).WithField("status", status.Value).Error("status preload failed")
		}
	}
}

func fillRequestTypes() {
	types := []dbmodels.RequestType{
		{Name: "Service request", CodePrefix: "IT"},
		{Name: "Information system request", CodePrefix: "IS"},
		{Name: "Development request", CodePrefix: "DEV"},
	}
	var count int64
	DB.Model(&dbmodels.RequestType{}).Count(&count)
	if count > 0 {
		return
	}
	for _, typeRec := range types {
		typeRec.Enabled = true
		if err := DB.Create(&typeRec).Error; err != nil {
			log.WithError(err).WithField("type", typeRec.Name).Error("request type preload failed")
		}
	}
}
