package dictapimodels

import (
	"github.com/pkg/errors"
	dbmodels "it-requests-backend/models/db"
)

type DepartmentData struct {
	Name                 string `json:"name"`
	IsIT                 bool   `json:"is_it"`
	DivisionCompetencyID int    `json:"division_competency_id"`
	SectionCompetencyID  int    `json:"section_competency_id"`
	Enabled              *bool  `json:"enabled"`
}

func (d DepartmentData) Validate() error {
	if d.Name == "" {
		return errors.New("department name is required")
	}
	return nil
}

type DepartmentView struct {
	DepartmentData
	ID int `json:"id"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	enabled := rec.Enabled
	return DepartmentView{
		DepartmentData: DepartmentData{
			Name:                 rec.Name,
			IsIT:                 rec.IsIT,
			DivisionCompetencyID: rec.DivisionCompetencyID,
			SectionCompetencyID:  rec.SectionCompetencyID,
			Enabled:              &enabled,
		},
		ID: rec.ID,
	}
}

type DepartmentFind struct {
	Name   string `json:"name"`
	ITOnly bool   `json:"it_only"`
}
