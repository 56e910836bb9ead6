package requeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Request) (id string, err error)
	GetByID(id string) (rec *dbmodels.Request, err error)
	GetByCode(code string) (rec *dbmodels.Request, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter requestapimodels.RequestFilter) (list []dbmodels.Request, err error)
	ListCount(filter requestapimodels.RequestFilter) (rowCount int64, err error)
	ListAll(filter requestapimodels.RequestFilter) (list []dbmodels.Request, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.db.
		Where("id = ?", id).
		Preload(clause.Associations).
		Preload("DepartmentAssignments.Department").
		Preload("EmployeeAssignments.Employee").
		Preload("Subtasks.EmployeeAssignments.Employee").
		Preload("Subtasks.Priority").
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

func (i impl) GetByCode(code string) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.db.
		Where("code = ?", code).
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
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) List(filter requestapimodels.RequestFilter) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx := i.applyFilter(filter).
		Preload("Department").
		Preload("Type").
		Preload("Topic").
		Preload("Priority").
		Preload("Approvals").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter requestapimodels.RequestFilter) (rowCount int64, err error) {
	err = i.applyFilter(filter).Count(&rowCount).Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

// ListAll skips pagination, for the register export.
func (i impl) ListAll(filter requestapimodels.RequestFilter) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	err = i.applyFilter(filter).
		Preload("Department").
		Preload("Type").
		Preload("Topic").
		Preload("Priority").
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) applyFilter(filter requestapimodels.RequestFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Request{})
	if filter.RequesterUsername != "" {
		tx = tx.Where("requester_username = ?", filter.RequesterUsername)
	}
	if filter.DepartmentID != 0 {
		tx = tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.DivisionCompetencyID != 0 {
		tx = tx.Where("division_competency_id = ?", filter.DivisionCompetencyID)
	}
	if filter.SectionCompetencyID != 0 {
		tx = tx.Where("section_competency_id = ?", filter.SectionCompetencyID)
	}
	if filter.TypeID != 0 {
		tx = tx.Where("type_id = ?", filter.TypeID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Tab != nil {
		switch *filter.Tab {
		case models.ListTabOpen:
			tx = tx.Where("status IN ?", []models.RequestStatus{
				models.RequestStatusRequested,
				models.RequestStatusManagerApproved,
				models.RequestStatusDirectorApproved,
				models.RequestStatusITManagerApproved,
			})
		case models.ListTabApproved:
			tx = tx.Where("status IN ?", []models.RequestStatus{
				models.RequestStatusApproved,
				models.RequestStatusInProgress,
			})
		case models.ListTabClosed:
			tx = tx.Where("status IN ?", []models.RequestStatus{
				models.RequestStatusComplete,
				models.RequestStatusRejected,
				models.RequestStatusCancelled,
			})
		}
	}
	if filter.DateFrom != nil {
		tx = tx.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx = tx.Where("created_at <= ?", *filter.DateTo)
	}
	return tx
}
