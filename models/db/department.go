package dbmodels

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Department struct {
	RefModel
	Name                 string `gorm:"type:varchar(255)" json:"name"`
	IsIT                 bool   `gorm:"index" json:"is_it"`
	DivisionCompetencyID int    `json:"division_competency_id"`
	SectionCompetencyID  int    `json:"section_competency_id"`
	Enabled              bool   `gorm:"default:true" json:"enabled"`
}

func (d *Department) AfterDelete(tx *gorm.DB) (err error) {
	if d.ID == 0 {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("department_id = ?", d.ID).Delete(&Employee{})
	return
}

func (d *Department) Validate() error {
	if d.Name == "" {
		return errors.New("department name is required")
	}
	return nil
}
