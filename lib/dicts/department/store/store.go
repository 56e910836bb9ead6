package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Department) (id int, err error)
	GetByID(id int) (rec *dbmodels.Department, err error)
	Find(name string, itOnly bool) (list []dbmodels.Department, err error)
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

func (i impl) Create(rec dbmodels.Department) (id int, err error) {
	err = rec.Validate()
	if err != nil {
		return 0, err
	}
	err = i.isUnique(0, rec.Name)
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

func (i impl) GetByID(id int) (*dbmodels.Department, error) {
	rec := dbmodels.Department{}
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

func (i impl) Find(name string, itOnly bool) (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	tx := i.db.
		Where("enabled = ?", true).
		Order("name ASC")
	if itOnly {
		tx = tx.Where("is_it = ?", true)
	}
	if name != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+name+"%")
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
	if name, ok := updMap["name"]; ok {
		if err := i.isUnique(id, name.(string)); err != nil {
			return err
		}
	}
	err := i.db.
		Model(&dbmodels.Department{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id int) error {
	rec := dbmodels.Department{
		RefModel: dbmodels.RefModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) isUnique(excludeID int, name string) error {
	var count int64
	tx := i.db.
		Model(&dbmodels.Department{}).
		Where("name = ?", name)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("a department with this name already exists")
	}
	return nil
}
