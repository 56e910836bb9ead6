package models

// UserScope is the caller profile rebuilt from JWT claims. Handlers use it
// to narrow list views and to authorize approval decisions.
type UserScope struct {
	Username             string
	FullName             string
	Position             Position
	DepartmentID         int
	DivisionCompetencyID int
	SectionCompetencyID  int
	IsAdmin              bool
}

func (u UserScope) IsITStaff() bool {
	return IsITStaff(u.DepartmentID, u.DivisionCompetencyID, u.SectionCompetencyID)
}
