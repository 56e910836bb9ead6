package assignmenthandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	assignmentstore "it-requests-backend/lib/assignment/store"
	requeststore "it-requests-backend/lib/requests/store"
	subtaskstore "it-requests-backend/lib/subtask/store"
	"it-requests-backend/models"
	requestapimodels "it-requests-backend/models/api/request"
	dictapimodels "it-requests-backend/models/api/dict"
	dbmodels "it-requests-backend/models/db"
)

type fakeDepartments struct{}

func (fakeDepartments) Create(dictapimodels.DepartmentData) (int, error)        { return 0, nil }
func (fakeDepartments) Update(int, dictapimodels.DepartmentData) error          { return nil }
func (fakeDepartments) Get(id int) (dictapimodels.DepartmentView, error)        { return dictapimodels.DepartmentView{ID: id}, nil }
func (fakeDepartments) Find(dictapimodels.DepartmentFind) ([]dictapimodels.DepartmentView, error) {
	return nil, nil
}
func (fakeDepartments) Options(context.Context, bool) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (fakeDepartments) Delete(int) error { return nil }

type fakeEmployees struct{}

func (fakeEmployees) Create(dictapimodels.EmployeeData) (int, error)     { return 0, nil }
func (fakeEmployees) Update(int, dictapimodels.EmployeeData) error       { return nil }
func (fakeEmployees) Get(id int) (dictapimodels.EmployeeView, error)     { return dictapimodels.EmployeeView{ID: id}, nil }
func (fakeEmployees) GetByUsername(string) (*dbmodels.Employee, error)   { return nil, nil }
func (fakeEmployees) Find(dictapimodels.EmployeeFind) ([]dictapimodels.EmployeeView, error) {
	return nil, nil
}
func (fakeEmployees) Options(context.Context, bool) ([]dictapimodels.Option, error) {
	return nil, nil
}
func (fakeEmployees) Delete(int) error { return nil }

func testHandler(t *testing.T) (impl, requeststore.Provider, subtaskstore.Provider) {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	err = gormDB.AutoMigrate(dbmodels.AllModels()...)
	require.Nil(t, err)
	requests := requeststore.NewInstance(gormDB)
	subtasks := subtaskstore.NewInstance(gormDB)
	handler := impl{
		store:              assignmentstore.NewInstance(gormDB),
		requestStore:       requests,
		subtaskStore:       subtasks,
		departmentProvider: fakeDepartments{},
		employeeProvider:   fakeEmployees{},
	}
	return handler, requests, subtasks
}

func TestAssignDepartment(t *testing.T) {
	handler, requests, _ := testHandler(t)
	user := models.UserScope{Username: "it.lead", Position: models.PositionManager}

	requestID, err := requests.Create(dbmodels.Request{
		Code:              "IT260830201",
		RequesterUsername: "john.t",
		DepartmentID:      5,
		TypeID:            1,
		Title:             "vpn access",
		Status:            models.RequestStatusApproved,
	})
	require.Nil(t, err)

	t.Run("repeated pick returns the same row", func(t *testing.T) {
		first, err := handler.AssignDepartment(requestID, user, requestapimodels.DepartmentAssignmentData{DepartmentID: 28})
		require.Nil(t, err)
		require.NotEmpty(t, first)

		second, err := handler.AssignDepartment(requestID, user, requestapimodels.DepartmentAssignmentData{DepartmentID: 28})
		require.Nil(t, err)
		require.Equal(t, first, second)

		list, err := handler.ListDepartments(requestID)
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "it.lead", list[0].AssignedBy)
	})

	t.Run("different department adds a row", func(t *testing.T) {
		_, err := handler.AssignDepartment(requestID, user, requestapimodels.DepartmentAssignmentData{DepartmentID: 30})
		require.Nil(t, err)

		list, err := handler.ListDepartments(requestID)
		require.Nil(t, err)
		require.Len(t, list, 2)
	})

	t.Run("unknown request is rejected", func(t *testing.T) {
		_, err := handler.AssignDepartment("00000000-0000-0000-0000-000000000000", user, requestapimodels.DepartmentAssignmentData{DepartmentID: 28})
		require.NotNil(t, err)
	})

	t.Run("remove", func(t *testing.T) {
		list, err := handler.ListDepartments(requestID)
		require.Nil(t, err)
		err = handler.RemoveDepartment(list[0].ID)
		require.Nil(t, err)

		list, err = handler.ListDepartments(requestID)
		require.Nil(t, err)
		require.Len(t, list, 1)
	})
}

func TestAssignEmployee(t *testing.T) {
	handler, requests, subtasks := testHandler(t)
	user := models.UserScope{Username: "it.lead", Position: models.PositionManager}

	requestID, err := requests.Create(dbmodels.Request{
		Code:              "IT260830202",
		RequesterUsername: "john.t",
		DepartmentID:      5,
		TypeID:            1,
		Title:             "new laptop",
		Status:            models.RequestStatusInProgress,
	})
	require.Nil(t, err)

	t.Run("request assignment is idempotent", func(t *testing.T) {
		first, err := handler.AssignEmployee(requestID, user, requestapimodels.EmployeeAssignmentData{EmployeeID: 42})
		require.Nil(t, err)

		second, err := handler.AssignEmployee(requestID, user, requestapimodels.EmployeeAssignmentData{EmployeeID: 42})
		require.Nil(t, err)
		require.Equal(t, first, second)

		list, err := handler.ListEmployees(requestID)
		require.Nil(t, err)
		require.Len(t, list, 1)
	})

	t.Run("subtask assignment is idempotent", func(t *testing.T) {
		subtaskID, err := subtasks.Create(dbmodels.Subtask{
			RequestID: requestID,
			Name:      "install image",
			Status:    models.SubtaskStatusOpen,
		})
		require.Nil(t, err)

		first, err := handler.AssignSubtaskEmployee(subtaskID, user, requestapimodels.EmployeeAssignmentData{EmployeeID: 42})
		require.Nil(t, err)

		second, err := handler.AssignSubtaskEmployee(subtaskID, user, requestapimodels.EmployeeAssignmentData{EmployeeID: 42})
		require.Nil(t, err)
		require.Equal(t, first, second)

		list, err := handler.ListSubtaskEmployees(subtaskID)
		require.Nil(t, err)
		require.Len(t, list, 1)

		// the same employee on the request and on a subtask are distinct rows
		requestList, err := handler.ListEmployees(requestID)
		require.Nil(t, err)
		require.Len(t, requestList, 1)
		require.NotEqual(t, requestList[0].ID, list[0].ID)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := handler.AssignEmployee(requestID, user, requestapimodels.EmployeeAssignmentData{})
		require.NotNil(t, err)
	})
}
