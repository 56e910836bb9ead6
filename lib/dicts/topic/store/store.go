package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Topic) (id int, err error)
	GetByID(id int) (rec *dbmodels.Topic, err error)
	List() (list []dbmodels.Topic, err error)
	Update(id int, updMap map[string]interface{}) error
	Delete(id int) error

	CreateSub(rec dbmodels.SubTopic) (id int, err error)
	GetSubByID(id int) (rec *dbmodels.SubTopic, err error)
	ListSub(topicID int) (list []dbmodels.SubTopic, err error)
	UpdateSub(id int, updMap map[string]interface{}) error
	DeleteSub(id int) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Topic) (id int, err error) {
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

func (i impl) GetByID(id int) (*dbmodels.Topic, error) {
	rec := dbmodels.Topic{}
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

func (i impl) List() (list []dbmodels.Topic, err error) {
	list = []dbmodels.Topic{}
	err = i.db.
		Where("enabled = ?", true).
		Order("name ASC").
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
		Model(&dbmodels.Topic{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id int) error {
	rec := dbmodels.Topic{
		RefModel: dbmodels.RefModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) CreateSub(rec dbmodels.SubTopic) (id int, err error) {
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

func (i impl) GetSubByID(id int) (*dbmodels.SubTopic, error) {
	rec := dbmodels.SubTopic{}
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

func (i impl) ListSub(topicID int) (list []dbmodels.SubTopic, err error) {
	list = []dbmodels.SubTopic{}
	tx := i.db.
		Where("enabled = ?", true).
		Order("name ASC")
	if topicID != 0 {
		tx = tx.Where("topic_id = ?", topicID)
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

func (i impl) UpdateSub(id int, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.SubTopic{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) DeleteSub(id int) error {
	rec := dbmodels.SubTopic{
		RefModel: dbmodels.RefModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}
