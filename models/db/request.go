package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"it-requests-backend/models"
)

// Request is the root entity of the workflow: a submitted IT service or
// development ticket with its approval chain, assignments, subtasks,
// attachments and UAT rounds.
type Request struct {
	BaseModel
	Code                 string               `gorm:"type:varchar(16);uniqueIndex" json:"code"`
	RequesterName        string               `gorm:"type:varchar(255)" json:"requester_name"`
	RequesterUsername    string               `gorm:"type:varchar(64);index" json:"requester_username"`
	Phone                string               `gorm:"type:varchar(32)" json:"phone"`
	DepartmentID         int                  `gorm:"index" json:"department_id"`
	Department           *Department          `json:"department,omitempty"`
	DivisionCompetencyID int                  `json:"division_competency_id"`
	SectionCompetencyID  int                  `json:"section_competency_id"`
	TypeID               int                  `gorm:"index" json:"type_id"`
	Type                 *RequestType         `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	TopicID              *int                 `json:"topic_id"`
	Topic                *Topic               `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	SubTopicID           *int                 `json:"sub_topic_id"`
	ProgramID            *int                 `json:"program_id"`
	Program              *Program             `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Title                string               `gorm:"type:varchar(512)" json:"title"`
	Detail               string               `gorm:"type:text" json:"detail"`
	Status               models.RequestStatus `gorm:"type:varchar(32);index" json:"status"`
	PriorityID           *int                 `json:"priority_id"`
	Priority             *Priority            `gorm:"foreignKey:PriorityID" json:"priority,omitempty"`
	JobStart             *time.Time           `json:"job_start"`
	JobEnd               *time.Time           `json:"job_end"`

	Approvals             []Approval             `gorm:"foreignKey:RequestID" json:"approvals,omitempty"`
	DepartmentAssignments []DepartmentAssignment `gorm:"foreignKey:RequestID" json:"department_assignments,omitempty"`
	EmployeeAssignments   []EmployeeAssignment   `gorm:"foreignKey:RequestID" json:"employee_assignments,omitempty"`
	Files                 []RequestFile          `gorm:"foreignKey:RequestID" json:"files,omitempty"`
	Subtasks              []Subtask              `gorm:"foreignKey:RequestID" json:"subtasks,omitempty"`
}

func (r *Request) Validate() error {
	if r.RequesterUsername == "" {
		return errors.New("requester is required")
	}
	if r.DepartmentID == 0 {
		return errors.New("department is required")
	}
	if r.TypeID == 0 {
		return errors.New("request type is required")
	}
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// GetApproval returns the chain row for the given role, or nil when the
// chain has not reached it yet.
func (r Request) GetApproval(role models.ApprovalRole) *Approval {
	for idx := range r.Approvals {
		if r.Approvals[idx].Role == role {
			return &r.Approvals[idx]
		}
	}
	return nil
}
