package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Status) (id int, err error)
	GetByID(id int) (rec *dbmodels.Status, err error)
	List(approvalOnly bool) (list []dbmodels.Status, err error)
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

func (i impl) Create(rec dbmodels.Status) (id int, err error) {
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

func (i impl) GetByID(id int) (*dbmodels.Status, error) {
	rec := dbmodels.Status{}
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

func (i impl) List(approvalOnly bool) (list []dbmodels.Status, err error) {
	list = []dbmodels.Status{}
	tx := i.db.
		Where("enabled = ?", true).
		Order("display_order ASC")
	if approvalOnly {
		tx = tx.Where("is_approval = ?", true)
	}
	err = tx.Find(&list).Error
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
		Model(&dbmodels.Status{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id int) error {
	rec := dbmodels.Status{
		RefModel: dbmodels.RefModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}
