package ratingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	CreateQuestion(rec dbmodels.RatingQuestion) (id int, err error)
	UpdateQuestion(id int, updMap map[string]interface{}) error
	ListQuestions(typeID int) (list []dbmodels.RatingQuestion, err error)
	DeleteQuestion(id int) error

	Create(rec dbmodels.Rating) (id string, err error)
	GetByRequest(requestID string) (rec *dbmodels.Rating, err error)
	DeleteScores(ratingID string) error
	UpdateComment(id string, comment string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateQuestion(rec dbmodels.RatingQuestion) (id int, err error) {
	err = rec.Validate()
	if err != nil {
		return 0, err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) UpdateQuestion(id int, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.RatingQuestion{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListQuestions(typeID int) (list []dbmodels.RatingQuestion, err error) {
	list = []dbmodels.RatingQuestion{}
	tx := i.db.
		Where("enabled = ?", true).
		Order("display_order ASC")
	if typeID != 0 {
		tx = tx.Where("type_id = ?", typeID)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteQuestion(id int) error {
	rec := dbmodels.RatingQuestion{
		RefModel: dbmodels.RefModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) Create(rec dbmodels.Rating) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByRequest(requestID string) (*dbmodels.Rating, error) {
	rec := dbmodels.Rating{}
	err := i.db.
		Where("request_id = ?", requestID).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) DeleteScores(ratingID string) error {
	return i.db.
		Where("rating_id = ?", ratingID).
		Delete(&dbmodels.RatingScore{}).
		Error
}

func (i impl) UpdateComment(id string, comment string) error {
	return i.db.
		Model(&dbmodels.Rating{}).
		Where("id = ?", id).
		Update("comment", comment).
		Error
}
