package uatstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.UATRecord) (id string, err error)
	GetByID(id string) (rec *dbmodels.UATRecord, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByRequest(requestID string) (list []dbmodels.UATRecord, err error)
	LastRound(requestID string) (round int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.UATRecord) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.UATRecord, error) {
	rec := dbmodels.UATRecord{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.UATRecord{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListByRequest(requestID string) (list []dbmodels.UATRecord, err error) {
	list = []dbmodels.UATRecord{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("round ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) LastRound(requestID string) (round int, err error) {
	rec := dbmodels.UATRecord{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("round DESC").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return rec.Round, nil
}
