package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"it-requests-backend/models"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id int, err error)
	GetByID(id int) (rec *dbmodels.Employee, err error)
	GetByUsername(username string) (rec *dbmodels.Employee, err error)
	Find(name string, departmentID int, itOnly bool) (list []dbmodels.Employee, err error)
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

func (i impl) Create(rec dbmodels.Employee) (id int, err error) {
	err = rec.Validate()
	if err != nil {
		return 0, err
	}
	existed, err := i.GetByUsername(rec.Username)
	if err != nil {
		return 0, err
	}
	if existed != nil {
		return 0, errors.New("an employee with this username already exists")
	}
	err = i.db.
		Omit("Department").
		Save(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id int) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Preload("Department").
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

func (i impl) GetByUsername(username string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("username = ?", username).
		Preload("Department").
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

func (i impl) Find(name string, departmentID int, itOnly bool) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.
		Where("enabled = ?", true).
		Preload("Department").
		Order("first_name ASC")
	if departmentID != 0 {
		tx = tx.Where("department_id = ?", departmentID)
	}
	if itOnly {
		tx = tx.Where(
			"department_id = ? OR division_competency_id = ? OR section_competency_id = ?",
			models.ITDepartmentID, models.ITDivisionCompetencyID, models.ITSectionCompetencyID,
		)
	}
	if name != "" {
		pattern := "%" + name + "%"
		tx = tx.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(username) LIKE ?", pattern, pattern, pattern)
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
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id int) error {
	rec := dbmodels.Employee{
		RefModel: dbmodels.RefModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}
