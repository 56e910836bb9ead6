package dbmodels

// DepartmentAssignment tags a request with a responsible IT department.
// The unique index makes duplicate picks from concurrent sessions collapse
// into one row.
type DepartmentAssignment struct {
	BaseModel
	RequestID    string      `gorm:"type:varchar(36);index:idx_req_dep,unique" json:"request_id"`
	DepartmentID int         `gorm:"index:idx_req_dep,unique" json:"department_id"`
	Department   *Department `json:"department,omitempty"`
	AssignedBy   string      `gorm:"type:varchar(64)" json:"assigned_by"`
}

// EmployeeAssignment links an employee to a request or to one of its
// subtasks; exactly one of RequestID/SubtaskID is set.
type EmployeeAssignment struct {
	BaseModel
	RequestID  *string   `gorm:"type:varchar(36);index:idx_req_emp,unique" json:"request_id"`
	SubtaskID  *string   `gorm:"type:varchar(36);index:idx_sub_emp,unique" json:"subtask_id"`
	EmployeeID int       `gorm:"index:idx_req_emp,unique;index:idx_sub_emp,unique" json:"employee_id"`
	Employee   *Employee `json:"employee,omitempty"`
	AssignedBy string    `gorm:"type:varchar(64)" json:"assigned_by"`
}
