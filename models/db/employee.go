package dbmodels

import (
	"fmt"

	"github.com/pkg/errors"
	"it-requests-backend/models"
)

// Employee is the internal directory record resolved after the AD
// credential check.
type Employee struct {
	RefModel
	Username             string          `gorm:"type:varchar(64);uniqueIndex" json:"username"`
	FirstName            string          `gorm:"type:varchar(128)" json:"first_name"`
	LastName             string          `gorm:"type:varchar(128)" json:"last_name"`
	Email                string          `gorm:"type:varchar(255)" json:"email"`
	Phone                string          `gorm:"type:varchar(32)" json:"phone"`
	Position             models.Position `gorm:"type:varchar(4)" json:"position"`
	DepartmentID         int             `gorm:"index" json:"department_id"`
	Department           *Department     `json:"department,omitempty"`
	DivisionCompetencyID int             `json:"division_competency_id"`
	SectionCompetencyID  int             `json:"section_competency_id"`
	Password             string          `gorm:"type:varchar(128)" json:"-"`
	IsAdmin              bool            `json:"is_admin"`
	Enabled              bool            `gorm:"default:true" json:"enabled"`
}

func (e Employee) FullName() string {
	return fmt.Sprintf("%s %s", e.FirstName, e.LastName)
}

func (e Employee) IsITStaff() bool {
	return models.IsITStaff(e.DepartmentID, e.DivisionCompetencyID, e.SectionCompetencyID)
}

func (e *Employee) Validate() error {
	if e.Username == "" {
		return errors.New("employee username is required")
	}
	if e.FirstName == "" {
		return errors.New("employee first name is required")
	}
	return nil
}
