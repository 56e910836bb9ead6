package requestapimodels

import (
	"github.com/pkg/errors"
	dbmodels "it-requests-backend/models/db"
)

type DepartmentAssignmentData struct {
	DepartmentID int `json:"department_id"`
}

func (r DepartmentAssignmentData) Validate() error {
	if r.DepartmentID == 0 {
		return errors.New("department is required")
	}
	return nil
}

type DepartmentAssignmentView struct {
	ID             string `json:"id"`
	RequestID      string `json:"request_id"`
	DepartmentID   int    `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	AssignedBy     string `json:"assigned_by"`
}

func DepartmentAssignmentConvert(rec dbmodels.DepartmentAssignment) DepartmentAssignmentView {
	view := DepartmentAssignmentView{
		ID:           rec.ID,
		RequestID:    rec.RequestID,
		DepartmentID: rec.DepartmentID,
		AssignedBy:   rec.AssignedBy,
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	return view
}

type EmployeeAssignmentData struct {
	EmployeeID int `json:"employee_id"`
}

func (r EmployeeAssignmentData) Validate() error {
	if r.EmployeeID == 0 {
		return errors.New("employee is required")
	}
	return nil
}

type EmployeeAssignmentView struct {
	ID           string `json:"id"`
	RequestID    string `json:"request_id,omitempty"`
	SubtaskID    string `json:"subtask_id,omitempty"`
	EmployeeID   int    `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	AssignedBy   string `json:"assigned_by"`
}

func EmployeeAssignmentConvert(rec dbmodels.EmployeeAssignment) EmployeeAssignmentView {
	view := EmployeeAssignmentView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		AssignedBy: rec.AssignedBy,
	}
	if rec.RequestID != nil {
		view.RequestID = *rec.RequestID
	}
	if rec.SubtaskID != nil {
		view.SubtaskID = *rec.SubtaskID
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.FullName()
	}
	return view
}
