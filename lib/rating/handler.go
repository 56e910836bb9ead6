package ratinghandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"it-requests-backend/db"
	ratingstore "it-requests-backend/lib/rating/store"
	requeststore "it-requests-backend/lib/requests/store"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	CreateQuestion(data requestapimodels.RatingQuestionData) (id int, err error)
	UpdateQuestion(id int, data requestapimodels.RatingQuestionData) error
	ListQuestions(typeID int) (list []requestapimodels.RatingQuestionView, err error)
	DeleteQuestion(id int) error

	Rate(requestID string, user models.UserScope, data requestapimodels.RatingData) (id string, err error)
	GetByRequest(requestID string) (item *requestapimodels.RatingView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        ratingstore.NewInstance(db.DB),
		requestStore: requeststore.NewInstance(db.DB),
	}
}

type impl struct {
	store        ratingstore.Provider
	requestStore requeststore.Provider
}

func (i impl) CreateQuestion(data requestapimodels.RatingQuestionData) (id int, err error) {
	err = data.Validate()
	if err != nil {
		return 0, err
	}
	rec := dbmodels.RatingQuestion{
		TypeID:       data.TypeID,
		Text:         data.Text,
		DisplayOrder: data.DisplayOrder,
		Enabled:      true,
	}
	if data.Enabled != nil {
		rec.Enabled = *data.Enabled
	}
	id, err = i.store.CreateQuestion(rec)
	if err != nil {
		return 0, err
	}
	log.
		WithField("rec_id", id).
		Info("rating question created")
	return id, nil
}

func (i impl) UpdateQuestion(id int, data requestapimodels.RatingQuestionData) error {
	updMap := map[string]interface{}{
		"type_id":       data.TypeID,
		"text":          data.Text,
		"display_order": data.DisplayOrder,
	}
	if data.Enabled != nil {
		updMap["enabled"] = *data.Enabled
	}
	err := i.store.UpdateQuestion(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("rating question updated")
	return nil
}

func (i impl) ListQuestions(typeID int) (list []requestapimodels.RatingQuestionView, err error) {
	recList, err := i.store.ListQuestions(typeID)
	if err != nil {
		return nil, err
	}
	list = make([]requestapimodels.RatingQuestionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, requestapimodels.RatingQuestionConvert(rec))
	}
	return list, nil
}

func (i impl) DeleteQuestion(id int) error {
	err := i.store.DeleteQuestion(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("rating question deleted")
	return nil
}

// Rate stores the requester's score sheet for a completed request. A second
// submission replaces the previous one.
func (i impl) Rate(requestID string, user models.UserScope, data requestapimodels.RatingData) (id string, err error) {
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
	if request.RequesterUsername != user.Username {
		return "", errors.New("only the requester may rate the request")
	}
	if request.Status != models.RequestStatusComplete {
		return "", errors.Errorf("only completed requests can be rated, current status is %v", request.Status)
	}
	existed, err := i.store.GetByRequest(requestID)
	if err != nil {
		return "", err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := ratingstore.NewInstance(tx)
		if existed != nil {
			id = existed.ID
			if err := store.DeleteScores(id); err != nil {
				return err
			}
			if err := store.UpdateComment(id, data.Comment); err != nil {
				return err
			}
		} else {
			id, err = store.Create(dbmodels.Rating{
				RequestID: requestID,
				Comment:   data.Comment,
			})
			if err != nil {
				return err
			}
		}
		rec := dbmodels.Rating{
			BaseModel: dbmodels.BaseModel{ID: id},
			RequestID: requestID,
			Comment:   data.Comment,
		}
		for _, score := range data.Scores {
			rec.Scores = append(rec.Scores, dbmodels.RatingScore{
				RatingID:   id,
				QuestionID: score.QuestionID,
				Score:      score.Score,
			})
		}
		_, err = store.Create(rec)
		return err
	})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to save the rating")
		return "", err
	}
	logger.
		WithField("rating_id", id).
		Info("rating saved")
	return id, nil
}

func (i impl) GetByRequest(requestID string) (item *requestapimodels.RatingView, err error) {
	rec, err := i.store.GetByRequest(requestID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := requestapimodels.RatingConvert(*rec)
	return &view, nil
}
