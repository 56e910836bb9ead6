package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Priority) (id int, err error)
	GetByID(id int) (rec *dbmodels.Priority, err error)
	List() (list []dbmodels.Priority, err error)
	Update(id int, updMap map[string]interface{}) error
	Delete(id int) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Priority) (id int, err error) {
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

func (i impl) GetByID(id int) (*dbmodels.Priority, error) {
	rec := dbmodels.Priority{}
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

func (i impl) List() (list []dbmodels.Priority, err error) {
	list = []dbmodels.Priority{}
	err = i.db.
		Where("enabled = ?", true).
		Order("display_order ASC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id int, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Priority{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id int) error {
	rec := dbmodels.Priority{
		RefModel: dbmodels.RefModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}
