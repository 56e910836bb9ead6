package assignmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	CreateDepartment(rec dbmodels.DepartmentAssignment) (id string, err error)
	GetDepartment(requestID string, departmentID int) (rec *dbmodels.DepartmentAssignment, err error)
	ListDepartments(requestID string) (list []dbmodels.DepartmentAssignment, err error)
	DeleteDepartment(id string) error

	CreateEmployee(rec dbmodels.EmployeeAssignment) (id string, err error)
	GetEmployeeByRequest(requestID string, employeeID int) (rec *dbmodels.EmployeeAssignment, err error)
	GetEmployeeBySubtask(subtaskID string, employeeID int) (rec *dbmodels.EmployeeAssignment, err error)
	ListEmployeesByRequest(requestID string) (list []dbmodels.EmployeeAssignment, err error)
	ListEmployeesBySubtask(subtaskID string) (list []dbmodels.EmployeeAssignment, err error)
	DeleteEmployee(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateDepartment(rec dbmodels.DepartmentAssignment) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetDepartment(requestID string, departmentID int) (*dbmodels.DepartmentAssignment, error) {
	rec := dbmodels.DepartmentAssignment{}
	err := i.db.
		Where("request_id = ?", requestID).
		Where("department_id = ?", departmentID).
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

func (i impl) ListDepartments(requestID string) (list []dbmodels.DepartmentAssignment, err error) {
	list = []dbmodels.DepartmentAssignment{}
	err = i.db.
		Where("request_id = ?", requestID).
		Preload("Department").
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteDepartment(id string) error {
	rec := dbmodels.DepartmentAssignment{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) CreateEmployee(rec dbmodels.EmployeeAssignment) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetEmployeeByRequest(requestID string, employeeID int) (*dbmodels.EmployeeAssignment, error) {
	rec := dbmodels.EmployeeAssignment{}
	err := i.db.
		Where("request_id = ?", requestID).
		Where("employee_id = ?", employeeID).
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

func (i impl) GetEmployeeBySubtask(subtaskID string, employeeID int) (*dbmodels.EmployeeAssignment, error) {
	rec := dbmodels.EmployeeAssignment{}
	err := i.db.
		Where("subtask_id = ?", subtaskID).
		Where("employee_id = ?", employeeID).
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

func (i impl) ListEmployeesByRequest(requestID string) (list []dbmodels.EmployeeAssignment, err error) {
	list = []dbmodels.EmployeeAssignment{}
	err = i.db.
		Where("request_id = ?", requestID).
		Preload("Employee").
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListEmployeesBySubtask(subtaskID string) (list []dbmodels.EmployeeAssignment, err error) {
	list = []dbmodels.EmployeeAssignment{}
	err = i.db.
		Where("subtask_id = ?", subtaskID).
		Preload("Employee").
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteEmployee(id string) error {
	rec := dbmodels.EmployeeAssignment{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}
