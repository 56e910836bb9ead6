package assignmenthandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"it-requests-backend/db"
	assignmentstore "it-requests-backend/lib/assignment/store"
	departmentprovider "it-requests-backend/lib/dicts/department"
	employeeprovider "it-requests-backend/lib/dicts/employee"
	requeststore "it-requests-backend/lib/requests/store"
	subtaskstore "it-requests-backend/lib/subtask/store"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	AssignDepartment(requestID string, user models.UserScope, data requestapimodels.DepartmentAssignmentData) (id string, err error)
	ListDepartments(requestID string) (list []requestapimodels.DepartmentAssignmentView, err error)
	RemoveDepartment(id string) error

	AssignEmployee(requestID string, user models.UserScope, data requestapimodels.EmployeeAssignmentData) (id string, err error)
	AssignSubtaskEmployee(subtaskID string, user models.UserScope, data requestapimodels.EmployeeAssignmentData) (id string, err error)
	ListEmployees(requestID string) (list []requestapimodels.EmployeeAssignmentView, err error)
	ListSubtaskEmployees(subtaskID string) (list []requestapimodels.EmployeeAssignmentView, err error)
	RemoveEmployee(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:              assignmentstore.NewInstance(db.DB),
		requestStore:       requeststore.NewInstance(db.DB),
		subtaskStore:       subtaskstore.NewInstance(db.DB),
		departmentProvider: departmentprovider.Instance,
		employeeProvider:   employeeprovider.Instance,
	}
}

type impl struct {
	store              assignmentstore.Provider
	requestStore       requeststore.Provider
	subtaskStore       subtaskstore.Provider
	departmentProvider departmentprovider.Provider
	employeeProvider   employeeprovider.Provider
}

// AssignDepartment tags a request with a responsible department. A repeated
// pick returns the existing row id without inserting a duplicate.
func (i impl) AssignDepartment(requestID string, user models.UserScope, data requestapimodels.DepartmentAssignmentData) (id string, err error) {
	logger := log.
		WithField("rec_id", requestID).
		WithField("department_id", data.DepartmentID).
		WithField("username", user.Username)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	err = i.checkRequest(requestID)
	if err != nil {
		return "", err
	}
	_, err = i.departmentProvider.Get(data.DepartmentID)
	if err != nil {
		return "", err
	}
	existed, err := i.store.GetDepartment(requestID, data.DepartmentID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		logger.Debug("department is already assigned")
		return existed.ID, nil
	}
	id, err = i.store.CreateDepartment(dbmodels.DepartmentAssignment{
		RequestID:    requestID,
		DepartmentID: data.DepartmentID,
		AssignedBy:   user.Username,
	})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to assign department")
		return "", err
	}
	logger.Info("department assigned")
	return id, nil
}

func (i impl) ListDepartments(requestID string) (list []requestapimodels.DepartmentAssignmentView, err error) {
	recList, err := i.store.ListDepartments(requestID)
	if err != nil {
		return nil, err
	}
	list = make([]requestapimodels.DepartmentAssignmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, requestapimodels.DepartmentAssignmentConvert(rec))
	}
	return list, nil
}

func (i impl) RemoveDepartment(id string) error {
	err := i.store.DeleteDepartment(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("department assignment removed")
	return nil
}

func (i impl) AssignEmployee(requestID string, user models.UserScope, data requestapimodels.EmployeeAssignmentData) (id string, err error) {
	logger := log.
		WithField("rec_id", requestID).
		WithField("employee_id", data.EmployeeID).
		WithField("username", user.Username)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	err = i.checkRequest(requestID)
	if err != nil {
		return "", err
	}
	_, err = i.employeeProvider.Get(data.EmployeeID)
	if err != nil {
		return "", err
	}
	existed, err := i.store.GetEmployeeByRequest(requestID, data.EmployeeID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		logger.Debug("employee is already assigned")
		return existed.ID, nil
	}
	id, err = i.store.CreateEmployee(dbmodels.EmployeeAssignment{
		RequestID:  &requestID,
		EmployeeID: data.EmployeeID,
		AssignedBy: user.Username,
	})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to assign employee")
		return "", err
	}
	logger.Info("employee assigned")
	return id, nil
}

func (i impl) AssignSubtaskEmployee(subtaskID string, user models.UserScope, data requestapimodels.EmployeeAssignmentData) (id string, err error) {
	logger := log.
		WithField("subtask_id", subtaskID).
		WithField("employee_id", data.EmployeeID).
		WithField("username", user.Username)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	subtask, err := i.subtaskStore.GetByID(subtaskID)
	if err != nil {
		return "", err
	}
	if subtask == nil {
		return "", errors.New("subtask not found")
	}
	_, err = i.employeeProvider.Get(data.EmployeeID)
	if err != nil {
		return "", err
	}
	existed, err := i.store.GetEmployeeBySubtask(subtaskID, data.EmployeeID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		logger.Debug("employee is already assigned")
		return existed.ID, nil
	}
	id, err = i.store.CreateEmployee(dbmodels.EmployeeAssignment{
		SubtaskID:  &subtaskID,
		EmployeeID: data.EmployeeID,
		AssignedBy: user.Username,
	})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to assign employee to subtask")
		return "", err
	}
	logger.Info("employee assigned to subtask")
	return id, nil
}

func (i impl) ListEmployees(requestID string) (list []requestapimodels.EmployeeAssignmentView, err error) {
	recList, err := i.store.ListEmployeesByRequest(requestID)
	if err != nil {
		return nil, err
	}
	return convertEmployeeList(recList), nil
}

func (i impl) ListSubtaskEmployees(subtaskID string) (list []requestapimodels.EmployeeAssignmentView, err error) {
	recList, err := i.store.ListEmployeesBySubtask(subtaskID)
	if err != nil {
		return nil, err
	}
	return convertEmployeeList(recList), nil
}

func (i impl) RemoveEmployee(id string) error {
	err := i.store.DeleteEmployee(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employee assignment removed")
	return nil
}

func (i impl) checkRequest(requestID string) error {
	rec, err := i.requestStore.GetByID(requestID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("request not found")
	}
	return nil
}

func convertEmployeeList(recList []dbmodels.EmployeeAssignment) []requestapimodels.EmployeeAssignmentView {
	list := make([]requestapimodels.EmployeeAssignmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, requestapimodels.EmployeeAssignmentConvert(rec))
	}
	return list
}
