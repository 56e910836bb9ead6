package uathandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"it-requests-backend/db"
	requeststore "it-requests-backend/lib/requests/store"
	uatstore "it-requests-backend/lib/uat/store"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	OpenRound(requestID string, user models.UserScope, data requestapimodels.UATData) (id string, err error)
	RecordResult(id string, user models.UserScope, data requestapimodels.UATResultData) error
	ListByRequest(requestID string) (list []requestapimodels.UATView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        uatstore.NewInstance(db.DB),
		requestStore: requeststore.NewInstance(db.DB),
	}
}

type impl struct {
	store        uatstore.Provider
	requestStore requeststore.Provider
}

func (i impl) OpenRound(requestID string, user models.UserScope, data requestapimodels.UATData) (id string, err error) {
	logger := log.
		WithField("rec_id", requestID).
		WithField("username", user.Username)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	request, err := i.requestStore.GetByID(requestID)
	if err != nil {
		return "", err
	}
	if request == nil {
		return "", errors.New("request not found")
	}
	if request.Status != models.RequestStatusInProgress {
		return "", errors.Errorf("uat rounds are opened for requests in progress, current status is %v", request.Status)
	}
	lastRound, err := i.store.LastRound(requestID)
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(dbmodels.UATRecord{
		RequestID: requestID,
		Round:     lastRound + 1,
		Detail:    data.Detail,
	})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to open uat round")
		return "", err
	}
	logger.
		WithField("uat_id", id).
		WithField("round", lastRound+1).
		Info("uat round opened")
	return id, nil
}

func (i impl) RecordResult(id string, user models.UserScope, data requestapimodels.UATResultData) error {
	logger := log.
		WithField("uat_id", id).
		WithField("username", user.Username)
	err := data.Validate()
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("uat round not found")
	}
	if rec.Result != 0 {
		return errors.New("the result of this round is already recorded")
	}
	testedBy := data.TestedBy
	if testedBy == "" {
		testedBy = user.FullName
	}
	now := time.Now()
	err = i.store.Update(id, map[string]interface{}{
		"Result":   data.Result,
		"Note":     data.Note,
		"TestedBy": testedBy,
		"TestedAt": &now,
	})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to record uat result")
		return err
	}
	logger.
		WithField("result", data.Result).
		Info("uat result recorded")
	return nil
}

func (i impl) ListByRequest(requestID string) (list []requestapimodels.UATView, err error) {
	recList, err := i.store.ListByRequest(requestID)
	if err != nil {
		return nil, err
	}
	list = make([]requestapimodels.UATView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, requestapimodels.UATConvert(rec))
	}
	return list, nil
}
