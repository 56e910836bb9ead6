package dictapimodels

import (
	"github.com/pkg/errors"
	"it-requests-backend/models"
	dbmodels "it-requests-backend/models/db"
)

type EmployeeData struct {
	Username             string          `json:"username"`
	FirstName            string          `json:"first_name"`
	LastName             string          `json:"last_name"`
	Email                string          `json:"email"`
	Phone                string          `json:"phone"`
	Position             models.Position `json:"position"`
	DepartmentID         int             `json:"department_id"`
	DivisionCompetencyID int             `json:"division_competency_id"`
	SectionCompetencyID  int             `json:"section_competency_id"`
	Password             string          `json:"password,omitempty"`
	IsAdmin              bool            `json:"is_admin"`
	Enabled              *bool           `json:"enabled"`
}

func (d EmployeeData) Validate() error {
	if d.Username == "" {
		return errors.New("employee username is required")
	}
	if d.FirstName == "" {
		return errors.New("employee first name is required")
	}
	return nil
}

type EmployeeView struct {
	ID                   int             `json:"id"`
	Username             string          `json:"username"`
	FullName             string          `json:"full_name"`
	Email                string          `json:"email"`
	Phone                string          `json:"phone"`
	Position             models.Position `json:"position"`
	DepartmentID         int             `json:"department_id"`
	DepartmentName       string          `json:"department_name,omitempty"`
	DivisionCompetencyID int             `json:"division_competency_id"`
	SectionCompetencyID  int             `json:"section_competency_id"`
	IsAdmin              bool            `json:"is_admin"`
	Enabled              bool            `json:"enabled"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:                   rec.ID,
		Username:             rec.Username,
		FullName:             rec.FullName(),
		Email:                rec.Email,
		Phone:                rec.Phone,
		Position:             rec.Position,
		DepartmentID:         rec.DepartmentID,
		DivisionCompetencyID: rec.DivisionCompetencyID,
		SectionCompetencyID:  rec.SectionCompetencyID,
		IsAdmin:              rec.IsAdmin,
		Enabled:              rec.Enabled,
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	return view
}

type AdminLookupView struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type EmployeeFind struct {
	Name         string `json:"name"`
	DepartmentID int    `json:"department_id"`
	ITOnly       bool   `json:"it_only"`
}
