package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"it-requests-backend/models"
)

type Subtask struct {
	BaseModel
	RequestID  string               `gorm:"type:varchar(36);index" json:"request_id"`
	Name       string               `gorm:"type:varchar(512)" json:"name"`
	StartDate  *time.Time           `json:"start_date"`
	DueDate    *time.Time           `json:"due_date"`
	Status     models.SubtaskStatus `gorm:"type:varchar(32)" json:"status"`
	PriorityID *int                 `json:"priority_id"`
	Priority   *Priority            `gorm:"foreignKey:PriorityID" json:"priority,omitempty"`

	EmployeeAssignments []EmployeeAssignment `gorm:"foreignKey:SubtaskID" json:"employee_assignments,omitempty"`
}

func (s *Subtask) Validate() error {
	if s.RequestID == "" {
		return errors.New("subtask request reference is required")
	}
	if s.Name == "" {
		return errors.New("subtask name is required")
	}
	if err := ValidateDateRange(s.StartDate, s.DueDate); err != nil {
		return err
	}
	return nil
}

// ValidateDateRange enforces start <= due whenever both ends are set.
func ValidateDateRange(start, due *time.Time) error {
	if start != nil && due != nil && due.Before(*start) {
		return errors.New("due date must not be earlier than start date")
	}
	return nil
}
